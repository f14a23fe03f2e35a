package logic

import (
	"bytes"
	"context"

	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/survey"
	"github.com/HuXin0817/fabric-claims/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

type SurveyLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSurveyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SurveyLogic {
	return &SurveyLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Survey answers both questions for the posted claims. Identical inputs are served from
// the cache while it holds them.
func (l *SurveyLogic) Survey(input []byte) (report *message.Report, err error) {
	digest := message.NewDigest(input)
	if cached, c := l.cached(digest); c {
		return cached, nil
	}

	err = l.svcCtx.NewLocker(digest.LockName()).Do(l.ctx, func() error {
		if cached, c := l.cached(digest); c {
			report = cached
			return nil
		}

		result, err := survey.Survey(l.ctx, bytes.NewReader(input), survey.WithMaxArea(l.svcCtx.Config.MaxClaimArea))
		if err != nil {
			return err
		}

		report = &result.Report
		l.Infof("surveyed %d claims, digest=%s, overlapped=%d", report.ClaimCount, digest, report.OverlappedArea)

		l.store(report)
		l.svcCtx.ReportPusher.AddMessages(*report)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (l *SurveyLogic) cached(digest message.Digest) (*message.Report, bool) {
	if l.svcCtx.Cache == nil {
		return nil, false
	}

	value, err := l.svcCtx.Cache.GetCtx(l.ctx, digest.CacheKey())
	if err != nil {
		l.Errorf("read cached report %s: %v", digest, err)
		return nil, false
	}
	if value == "" {
		return nil, false
	}

	report, err := message.NewReport(value)
	if err != nil {
		l.Errorf("decode cached report %s: %v", digest, err)
		return nil, false
	}

	return &report, true
}

func (l *SurveyLogic) store(report *message.Report) {
	if l.svcCtx.Cache == nil {
		return
	}

	if err := l.svcCtx.Cache.SetexCtx(l.ctx, report.Digest.CacheKey(), report.String(), l.svcCtx.Config.CacheSeconds); err != nil {
		l.Errorf("cache report %s: %v", report.Digest, err)
	}
}
