package record

import (
	"time"

	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	RunUid         message.RunUid `bson:"runUid" json:"runUid"`
	Digest         message.Digest `bson:"digest" json:"digest"`
	ClaimCount     int            `bson:"claimCount" json:"claimCount"`
	CoveredArea    int            `bson:"coveredArea" json:"coveredArea"`
	OverlappedArea int            `bson:"overlappedArea" json:"overlappedArea"`
	IntactClaimId  int            `bson:"intactClaimId,omitempty" json:"intactClaimId,omitempty"`
	HasIntactClaim bool           `bson:"hasIntactClaim" json:"hasIntactClaim"`
}

func NewReportRecode(r message.Report) *ReportRecode {
	return &ReportRecode{
		RunUid:         r.RunUid,
		Digest:         r.Digest,
		ClaimCount:     r.ClaimCount,
		CoveredArea:    r.CoveredArea,
		OverlappedArea: r.OverlappedArea,
		IntactClaimId:  r.IntactClaimId,
		HasIntactClaim: r.HasIntactClaim,
	}
}

func (r *ReportRecode) Report() message.Report {
	return message.Report{
		TimeStamp:      message.NewTimeStamp(r.CreateAt),
		RunUid:         r.RunUid,
		Digest:         r.Digest,
		ClaimCount:     r.ClaimCount,
		CoveredArea:    r.CoveredArea,
		OverlappedArea: r.OverlappedArea,
		IntactClaimId:  r.IntactClaimId,
		HasIntactClaim: r.HasIntactClaim,
	}
}
