package message

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Digest identifies a claim input by content.
type Digest string

func NewDigest(input []byte) Digest {
	return Digest(strconv.FormatUint(xxhash.Sum64(input), 16))
}

func (d Digest) CacheKey() string {
	return "survey:" + string(d)
}

func (d Digest) LockName() string {
	return "survey-lock:" + string(d)
}
