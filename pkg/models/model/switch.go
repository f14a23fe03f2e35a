package model

import "strings"

// Switch is an On/Off command line setting.
type Switch bool

const (
	On  Switch = true
	Off Switch = false
)

var switchName = map[string]Switch{
	"on":  On,
	"1":   On,
	"yes": On,

	"off": Off,
	"0":   Off,
	"no":  Off,
}

// NewSwitch falls back to Off for unknown values.
func NewSwitch(s string) Switch {
	return switchName[strings.ToLower(strings.TrimSpace(s))]
}

func (s Switch) String() string {
	if s {
		return "On"
	}
	return "Off"
}
