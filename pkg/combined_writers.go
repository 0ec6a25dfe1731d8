package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees log output to several writers. A failing writer does
// not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

// Write reports len(p) written as long as at least one writer succeeded,
// along with the errors of the ones that failed.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	failed := 0
	for _, w := range cw.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			failed++
		}
	}
	if failed > 0 && failed == len(cw.writers) {
		return 0, err
	}
	return len(p), err
}
