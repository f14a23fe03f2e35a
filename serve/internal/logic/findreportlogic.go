package logic

import (
	"context"
	"errors"

	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/models/record"
	"github.com/HuXin0817/fabric-claims/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

type FindReportLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewFindReportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FindReportLogic {
	return &FindReportLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// FindReport looks in the cache first and falls back to the latest mongo record.
func (l *FindReportLogic) FindReport(digest message.Digest) (*message.Report, error) {
	surveyLogic := NewSurveyLogic(l.ctx, l.svcCtx)
	if cached, c := surveyLogic.cached(digest); c {
		return cached, nil
	}

	if l.svcCtx.Recorder == nil {
		return nil, ErrReportNotFound
	}

	recode, err := l.svcCtx.Recorder.FindLatestByDigest(l.ctx, digest)
	switch {
	case errors.Is(err, record.ErrNotFound):
		return nil, ErrReportNotFound
	case err != nil:
		return nil, err
	}

	report := recode.Report()
	return &report, nil
}
