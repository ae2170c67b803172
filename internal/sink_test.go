package internal

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestSink_BlocksNeverInterleave(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	// every writer repeats one letter; interleaving would mix letters
	// within a line
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch := string(rune('a' + i))
			for j := 0; j < 50; j++ {
				block := strings.Repeat(ch, 100) + "\n"
				if err := sink.Write([]byte(block)); err != nil {
					t.Errorf("sink write: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8*50 {
		t.Fatalf("expected %d blocks, got %d", 8*50, len(lines))
	}
	for _, line := range lines {
		if len(line) != 100 || strings.Count(line, line[:1]) != 100 {
			t.Fatalf("interleaved block: %q", line)
		}
	}
}

func TestSink_EmptyBlockWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := sink.Write(nil); err != nil {
		t.Fatalf("empty write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestSink_PropagatesWriteError(t *testing.T) {
	sink := NewSink(failWriter{})
	if err := sink.Write([]byte("x\n")); err == nil {
		t.Fatal("expected write error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("broken pipe") }
