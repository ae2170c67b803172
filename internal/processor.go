package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
)

// Outcome is the per-file scan result. Matched already incorporates
// negation; a file that failed to read counts as neither.
type Outcome struct {
	Path    string
	Matched bool
	Err     error
}

// ProcessFunc scans one file and writes its report through the sink.
type ProcessFunc func(path string) Outcome

// NewProcessor picks one of the four scan variants up front, so the
// per-line loops carry no flag checks.
func NewProcessor(cfg ScanConfig, re *regexp.Regexp, sink *Sink) ProcessFunc {
	switch {
	case cfg.Multiline && cfg.Negate:
		return func(path string) Outcome { return processWholeFileNegated(re, sink, path) }
	case cfg.Multiline:
		return func(path string) Outcome { return processWholeFile(re, sink, path) }
	case cfg.Negate:
		return func(path string) Outcome { return processByLineNegated(re, sink, path) }
	default:
		return func(path string) Outcome { return processByLine(re, sink, path) }
	}
}

// processByLine streams lines and emits "path:lineno:" + line for every
// hit, trailing CR/LF stripped. The whole block is written in one go so
// reports from concurrent files never interleave.
func processByLine(re *regexp.Regexp, sink *Sink, path string) Outcome {
	f, err := os.Open(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	defer f.Close()

	var block bytes.Buffer
	matched := false
	br := bufio.NewReaderSize(f, 64*1024)
	lineNo := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if re.Match(line) {
				matched = true
				fmt.Fprintf(&block, "%s:%d:", path, lineNo)
				block.Write(bytes.TrimRight(line, "\r\n"))
				block.WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Outcome{Path: path, Err: err}
		}
	}
	if err := sink.Write(block.Bytes()); err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Matched: matched}
}

// processByLineNegated reports the file as matched only when no line hits.
func processByLineNegated(re *regexp.Regexp, sink *Sink, path string) Outcome {
	f, err := os.Open(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 64*1024)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 && re.Match(line) {
			return Outcome{Path: path, Matched: false}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Outcome{Path: path, Err: err}
		}
	}
	if err := sink.Write([]byte(path + "\n")); err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Matched: true}
}

// processWholeFile searches the entire buffer and reports the first match.
// The first line of the span is widened to the full physical line, so a
// match starting mid-line still reports from the start of that line.
func processWholeFile(re *regexp.Regexp, sink *Sink, path string) Outcome {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}

	loc := re.FindIndex(contents)
	if loc == nil {
		return Outcome{Path: path, Matched: false}
	}

	nl := []byte{'\n'}
	lineNo := bytes.Count(contents[:loc[0]], nl)
	segs := bytes.Split(contents[loc[0]:loc[1]], nl)
	segs[0] = physicalLine(contents, loc[0])

	var block bytes.Buffer
	fmt.Fprintf(&block, "%s:%d:", path, lineNo+1)
	block.Write(bytes.Join(segs, nl))
	block.WriteByte('\n')

	if err := sink.Write(block.Bytes()); err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Matched: true}
}

// processWholeFileNegated reports the file as matched only when the
// pattern is absent from the entire buffer.
func processWholeFileNegated(re *regexp.Regexp, sink *Sink, path string) Outcome {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	if re.Match(contents) {
		return Outcome{Path: path, Matched: false}
	}
	if err := sink.Write([]byte(path + "\n")); err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Matched: true}
}

// physicalLine returns the full line containing byte offset pos,
// without its trailing newline.
func physicalLine(contents []byte, pos int) []byte {
	start := bytes.LastIndexByte(contents[:pos], '\n') + 1
	if end := bytes.IndexByte(contents[start:], '\n'); end >= 0 {
		return contents[start : start+end]
	}
	return contents[start:]
}
