package fragment

import (
	"io"
	"strings"
)

// Sink accumulates rendered text. Append writes the parts in order.
type Sink interface {
	Append(parts ...string)
}

// Buffer is the default Sink backed by a strings.Builder. The zero value is
// ready to use.
type Buffer struct {
	b strings.Builder
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append implements Sink.
func (b *Buffer) Append(parts ...string) {
	for _, part := range parts {
		b.b.WriteString(part)
	}
}

// String returns the accumulated text.
func (b *Buffer) String() string {
	return b.b.String()
}

// Len reports the number of accumulated bytes.
func (b *Buffer) Len() int {
	return b.b.Len()
}

// Reset discards the accumulated text.
func (b *Buffer) Reset() {
	b.b.Reset()
}

// WriterSink adapts an io.Writer to Sink. Writes stop after the first error,
// which is reported by Err.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Append implements Sink.
func (s *WriterSink) Append(parts ...string) {
	for _, part := range parts {
		if s.err != nil {
			return
		}
		_, s.err = io.WriteString(s.w, part)
	}
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	return s.err
}

var (
	_ Sink = (*Buffer)(nil)
	_ Sink = (*WriterSink)(nil)
)
