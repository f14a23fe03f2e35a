package model

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar draws on stderr by default so stdout stays reserved for answers.
type Bar progressbar.ProgressBar

type BarOption func(*barOptions)

type barOptions struct {
	writer io.Writer
}

func WithWriter(w io.Writer) BarOption {
	return func(o *barOptions) {
		o.writer = w
	}
}

func NewBar(len int, description string, options ...BarOption) *Bar {
	o := barOptions{writer: os.Stderr}
	for _, option := range options {
		option(&o)
	}

	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(o.writer),
		progressbar.OptionSetDescription(aurora.Cyan(description).String()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
