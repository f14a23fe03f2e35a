package handler

import (
	"net/http"
	"time"

	"github.com/HuXin0817/fabric-claims/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func RegisterHandlers(router *gin.Engine, svcCtx *svc.ServiceContext) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.POST("/survey", SurveyHandler(svcCtx))
	router.GET("/survey/:digest", FindReportHandler(svcCtx))
}

// AccessLog writes one logx line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logx.WithContext(c.Request.Context()).WithDuration(time.Since(start)).Infof("%s %s %d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
