package logging

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to every writer, collecting all failures.
type CombinedWriter struct {
	Writers []io.Writer
}

// NewCombinedWriter returns a writer that tees to writers.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

// Write reports len(p) when at least one writer succeeded.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	ok := false
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		ok = true
	}
	if ok {
		n = len(p)
	}
	return n, err
}
