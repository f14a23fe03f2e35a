package survey

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
	"github.com/HuXin0817/fabric-claims/pkg/models/fabric"
	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/HuXin0817/fabric-claims/pkg/models/model"
)

var ErrAreaLimit = errors.New("claimed area exceeds the survey limit")

type Result struct {
	Claims []claim.Claim
	Fabric fabric.Fabric
	Report message.Report
}

type Option func(*options)

type options struct {
	progress model.Switch
	barOpts  []model.BarOption
	maxArea  int
}

// WithMaxArea bounds the summed area of all claims. Zero means no bound.
func WithMaxArea(maxArea int) Option {
	return func(o *options) {
		o.maxArea = maxArea
	}
}

// WithProgress draws a progress bar while claims are accumulated.
func WithProgress(progress model.Switch, barOpts ...model.BarOption) Option {
	return func(o *options) {
		o.progress = progress
		o.barOpts = barOpts
	}
}

// Survey parses every claim in r and answers both questions about them.
// A malformed line aborts the survey with a *claim.MalformedLineError.
func Survey(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	claims, err := claim.ParseClaims(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	if err = checkArea(claims, o.maxArea); err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var fabricOpts []fabric.Option
	if o.progress {
		bar := model.NewBar(len(claims), "Accumulating claims", o.barOpts...)
		defer bar.Close()
		fabricOpts = append(fabricOpts, fabric.WithProgress(bar.Add))
	}

	f := fabric.Accumulate(claims, fabricOpts...)

	report := message.Report{
		TimeStamp:      message.NewTimeStamp(time.Now()),
		RunUid:         message.NewRunUid(),
		Digest:         message.NewDigest(input),
		ClaimCount:     len(claims),
		CoveredArea:    f.CoveredArea(),
		OverlappedArea: f.OverlappedArea(),
	}

	intact, err := f.IntactClaim(claims)
	switch {
	case err == nil:
		report.IntactClaimId = intact.Id
		report.HasIntactClaim = true
	case !errors.Is(err, fabric.ErrNoIntactClaim):
		return nil, err
	}

	return &Result{
		Claims: claims,
		Fabric: f,
		Report: report,
	}, nil
}

func checkArea(claims []claim.Claim, maxArea int) error {
	if maxArea <= 0 {
		return nil
	}

	total := 0
	for _, c := range claims {
		if c.Area() > maxArea-total {
			return fmt.Errorf("%w: claim #%d brings the total past %d inches", ErrAreaLimit, c.Id, maxArea)
		}
		total += c.Area()
	}
	return nil
}
