package internal

import (
	"io"
	"sync"
)

// Sink serializes report blocks from concurrent workers.
// One Write per completed file, never per line.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSink(w io.Writer) *Sink { return &Sink{w: w} }

// Write hands one complete report block to the underlying writer.
func (s *Sink) Write(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(block)
	return err
}
