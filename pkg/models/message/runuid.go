package message

import "github.com/google/uuid"

// RunUid identifies one survey run.
type RunUid string

func NewRunUid() RunUid {
	return RunUid(uuid.New().String())
}
