package claim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var linePattern = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

// MalformedLineError is the only error a claim input can produce.
type MalformedLineError struct {
	LineNumber int
	Line       string
	Reason     string
}

func (e *MalformedLineError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.LineNumber, e.Reason, e.Line)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Line)
}

func NewClaim(line string) (newClaim Claim, err error) {
	line = strings.TrimSuffix(line, "\r")

	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return Claim{}, &MalformedLineError{Line: line, Reason: "does not match claim pattern"}
	}

	var fields [5]int
	for i := range fields {
		if fields[i], err = strconv.Atoi(match[i+1]); err != nil {
			return Claim{}, &MalformedLineError{Line: line, Reason: "number out of range"}
		}
	}

	newClaim = Claim{
		Id:     fields[0],
		Left:   fields[1],
		Top:    fields[2],
		Width:  fields[3],
		Height: fields[4],
	}

	switch {
	case newClaim.Id == 0:
		return Claim{}, &MalformedLineError{Line: line, Reason: "claim id must be positive"}
	case newClaim.Width == 0 || newClaim.Height == 0:
		return Claim{}, &MalformedLineError{Line: line, Reason: "claim size must be positive"}
	case newClaim.Left > math.MaxInt-newClaim.Width || newClaim.Top > math.MaxInt-newClaim.Height:
		return Claim{}, &MalformedLineError{Line: line, Reason: "claim extends past the fabric edge"}
	case newClaim.Width > math.MaxInt/newClaim.Height:
		return Claim{}, &MalformedLineError{Line: line, Reason: "claim area out of range"}
	}

	return newClaim, nil
}

// ParseClaims reads one claim per line and stops at the first malformed one.
// Lines have no length limit.
func ParseClaims(r io.Reader) (claims []Claim, err error) {
	seen := make(map[int]struct{})
	reader := bufio.NewReader(r)

	for lineNumber := 1; ; lineNumber++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read claims: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")

		c, err := NewClaim(line)
		if err != nil {
			malformed := err.(*MalformedLineError)
			malformed.LineNumber = lineNumber
			return nil, malformed
		}

		if _, dup := seen[c.Id]; dup {
			return nil, &MalformedLineError{
				LineNumber: lineNumber,
				Line:       strings.TrimSuffix(line, "\r"),
				Reason:     fmt.Sprintf("duplicate claim id %d", c.Id),
			}
		}

		seen[c.Id] = struct{}{}
		claims = append(claims, c)

		if readErr != nil {
			break
		}
	}

	return claims, nil
}
