package file

import (
	"io"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

func Open(filePath string) (io.ReadCloser, error) {
	if filePath == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(filePath)
}
