package message

import "time"

// TimeStamp is a UTC time with second precision.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(time.DateTime))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.ParseInLocation(time.DateTime, string(ts), time.UTC)
}
