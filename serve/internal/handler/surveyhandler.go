package handler

import (
	"errors"
	"net/http"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/survey"
	"github.com/HuXin0817/fabric-claims/serve/internal/logic"
	"github.com/HuXin0817/fabric-claims/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

func SurveyHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svcCtx.Config.MaxBodyBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, svcCtx.Config.MaxBodyBytes)
		}

		input, err := c.GetRawData()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report, err := logic.NewSurveyLogic(c.Request.Context(), svcCtx).Survey(input)
		if err != nil {
			var malformed *claim.MalformedLineError
			if errors.As(err, &malformed) {
				c.JSON(http.StatusBadRequest, gin.H{
					"line":       malformed.Line,
					"lineNumber": malformed.LineNumber,
					"reason":     malformed.Reason,
				})
				return
			}
			if errors.Is(err, survey.ErrAreaLimit) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, jsonContentType, []byte(report.String()))
	}
}

func FindReportHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		digest := message.Digest(c.Param("digest"))

		report, err := logic.NewFindReportLogic(c.Request.Context(), svcCtx).FindReport(digest)
		switch {
		case errors.Is(err, logic.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, jsonContentType, []byte(report.String()))
	}
}
