package lines

import (
	"bufio"
	"errors"
	"io"
)

const (
	DefaultSize = 64 * 1024
	MinSize     = 16
)

const Terminator = '\n'

// Line is a fragment of a line. A line longer than the buffer of the
// Scanner is split into several fragments: the first one has Start set, the
// last one has End set.
type Line struct {
	Text       []byte
	Start      bool
	End        bool
	Terminated bool
}

// Scanner splits a reader into lines without ever holding more than the
// size of its buffer in memory.
type Scanner struct {
	rs *bufio.Reader

	start bool
	line  Line
	err   error
	done  bool
}

func NewScanner(r io.Reader, size int) *Scanner {
	if size < MinSize {
		size = MinSize
	}
	return &Scanner{
		rs:    bufio.NewReaderSize(r, size),
		start: true,
	}
}

func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	frag, err := s.rs.ReadSlice(Terminator)
	switch {
	case err == nil:
		s.emit(frag[:len(frag)-1], true, true)
	case errors.Is(err, bufio.ErrBufferFull):
		s.emit(frag, false, false)
	case errors.Is(err, io.EOF):
		s.done = true
		if s.start && len(frag) == 0 {
			return false
		}
		s.emit(frag, true, false)
	default:
		s.done = true
		s.err = err
		if len(frag) == 0 {
			return false
		}
		// bytes read before the failure are still part of the input
		s.emit(frag, false, false)
	}
	return true
}

// Line returns the last fragment read by Scan. Its text is only valid until
// the next call to Scan.
func (s *Scanner) Line() Line {
	return s.line
}

func (s *Scanner) Err() error {
	return s.err
}

// Buffered reports the number of bytes that can be scanned without reading
// again from the underlying reader.
func (s *Scanner) Buffered() int {
	return s.rs.Buffered()
}

func (s *Scanner) emit(text []byte, end, terminated bool) {
	s.line = Line{
		Text:       text,
		Start:      s.start,
		End:        end,
		Terminated: terminated,
	}
	s.start = end
}
