package tlox

import (
	"io"
	"strings"
)

// OutputSink is where `print` sends its rendered text. A failed write surfaces
// to the evaluator as a WriteError.
type OutputSink interface {
	Write(text string) error
}

// BufferedSink accumulates everything written to it in memory. Used by tests
// and anywhere the interpreter's output needs assembling into a single string.
type BufferedSink struct {
	buf strings.Builder
}

// NewBufferedSink creates an empty in-memory sink.
func NewBufferedSink() *BufferedSink {
	return &BufferedSink{}
}

func (s *BufferedSink) Write(text string) error {
	s.buf.WriteString(text)
	return nil
}

// String returns everything written so far.
func (s *BufferedSink) String() string {
	return s.buf.String()
}

// WriterSink adapts any io.Writer — typically os.Stdout — into an OutputSink.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as an OutputSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}
