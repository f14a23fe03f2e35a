package logic

import "errors"

var ErrReportNotFound = errors.New("no report for this digest")
