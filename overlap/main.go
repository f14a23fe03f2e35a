package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/HuXin0817/fabric-claims/pkg/models/claim"
	"github.com/HuXin0817/fabric-claims/pkg/models/file"
	"github.com/HuXin0817/fabric-claims/pkg/models/model"
	"github.com/HuXin0817/fabric-claims/pkg/survey"
)

const (
	exitOK        = 0
	exitMalformed = 1
	exitFailure   = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("overlap", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inputFile := flags.String("f", "input.txt", "claims file, - for stdin")
	progressConf := flags.String("Progress", "Off", "draw a progress bar on stderr")
	maxArea := flags.Int("MaxArea", 0, "refuse inputs claiming more inches in total, 0 for no limit")
	if err := flags.Parse(args); err != nil {
		return exitFailure
	}

	logger := log.New(stderr, "", log.LstdFlags)

	in, err := file.Open(*inputFile)
	if err != nil {
		logger.Println(err)
		return exitFailure
	}
	defer in.Close()

	result, err := survey.Survey(context.Background(), in,
		survey.WithProgress(model.NewSwitch(*progressConf), model.WithWriter(stderr)),
		survey.WithMaxArea(*maxArea),
	)
	if err != nil {
		var malformed *claim.MalformedLineError
		if errors.As(err, &malformed) {
			fmt.Fprintln(stdout, malformed.Line)
			return exitMalformed
		}
		logger.Println(err)
		return exitFailure
	}

	fmt.Fprintln(stdout, result.Report.OverlappedArea)
	return exitOK
}
