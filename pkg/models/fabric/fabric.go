package fabric

import (
	"errors"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
)

var ErrNoIntactClaim = errors.New("no claim is free of overlap")

// Fabric maps each claimed inch to the number of claims covering it.
// Inches nobody claimed are absent.
type Fabric struct {
	Coverage map[Inch]int
}

func NewFabric() Fabric {
	return Fabric{
		Coverage: make(map[Inch]int),
	}
}

// Accumulate builds the coverage of all claims. The result does not depend on claim order.
func Accumulate(claims []claim.Claim, opts ...Option) (newFabric Fabric) {
	o := options{progress: func(int) {}}
	for _, opt := range opts {
		opt(&o)
	}

	newFabric = NewFabric()
	for _, c := range claims {
		newFabric.add(c)
		o.progress(1)
	}

	return
}

func (f Fabric) add(c claim.Claim) {
	EachInch(c, func(i Inch) bool {
		f.Coverage[i]++
		return true
	})
}

func (f Fabric) CoverageAt(i Inch) int {
	return f.Coverage[i]
}

// CoveredArea counts inches claimed at least once.
func (f Fabric) CoveredArea() int {
	return len(f.Coverage)
}

// OverlappedArea counts inches claimed two or more times.
func (f Fabric) OverlappedArea() (area int) {
	for _, count := range f.Coverage {
		if count > 1 {
			area++
		}
	}
	return
}

// Overlaps reports whether any inch of c is shared with another claim.
// f must already contain c.
func (f Fabric) Overlaps(c claim.Claim) (overlaps bool) {
	EachInch(c, func(i Inch) bool {
		overlaps = f.Coverage[i] > 1
		return !overlaps
	})
	return
}

// IntactClaim returns the first claim, in input order, that overlaps nothing.
func (f Fabric) IntactClaim(claims []claim.Claim) (claim.Claim, error) {
	for _, c := range claims {
		if !f.Overlaps(c) {
			return c, nil
		}
	}
	return claim.Claim{}, ErrNoIntactClaim
}
