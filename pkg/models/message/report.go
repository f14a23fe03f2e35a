package message

import (
	"github.com/bytedance/sonic"
)

type Report struct {
	TimeStamp      TimeStamp `json:"timeStamp"`
	RunUid         RunUid    `json:"runUid"`
	Digest         Digest    `json:"digest"`
	ClaimCount     int       `json:"claimCount"`
	CoveredArea    int       `json:"coveredArea"`
	OverlappedArea int       `json:"overlappedArea"`
	IntactClaimId  int       `json:"intactClaimId,omitempty"`
	HasIntactClaim bool      `json:"hasIntactClaim"`
}

func NewReport(str string) (newReport Report, err error) {
	err = sonic.UnmarshalString(str, &newReport)
	return
}

func (r Report) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
