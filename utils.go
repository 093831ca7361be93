package concat

import (
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/midbel/rw"
)

type nopCloser struct {
	io.Writer
}

// NopCloser wraps w so that the processor can still find the file behind it
// when w is an *os.File.
func NopCloser(w io.Writer) io.WriteCloser {
	return &nopCloser{
		Writer: w,
	}
}

func (_ *nopCloser) Close() error {
	return nil
}

func (c *nopCloser) Unwrap() io.Writer {
	return c.Writer
}

// maxUnwrap bounds the chain of wrappers followed to reach a file.
const maxUnwrap = 8

func unwrapFileFromReader(r io.Reader) (*os.File, bool) {
	for i := 0; i < maxUnwrap; i++ {
		switch x := r.(type) {
		case *os.File:
			return x, true
		case rw.UnwrapReader:
			r, _ = x.Unwrap().(io.Reader)
		default:
			return nil, false
		}
	}
	return nil, false
}

func unwrapFileFromWriter(w io.Writer) (*os.File, bool) {
	for i := 0; i < maxUnwrap; i++ {
		switch x := w.(type) {
		case *os.File:
			return x, true
		case *nopCloser:
			w = x.Writer
		case rw.UnwrapWriter:
			w, _ = x.Unwrap().(io.Writer)
		default:
			return nil, false
		}
	}
	return nil, false
}

func isDir(r io.Reader) bool {
	s, ok := r.(interface{ Stat() (fs.FileInfo, error) })
	if !ok {
		return false
	}
	i, err := s.Stat()
	return err == nil && i.IsDir()
}

// sameFile reports whether r reads from the regular file out writes to and
// still has bytes left to read. Both files are inspected as they are now:
// output written earlier in the run makes a truncated sink non-empty.
func sameFile(r io.Reader, out *os.File) bool {
	if out == nil {
		return false
	}
	f, ok := unwrapFileFromReader(r)
	if !ok {
		return false
	}
	oi, err := out.Stat()
	if err != nil || !oi.Mode().IsRegular() {
		return false
	}
	ii, err := f.Stat()
	if err != nil || !os.SameFile(ii, oi) {
		return false
	}
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return true
	}
	return off < ii.Size()
}

func sinkFile(w io.Writer) *os.File {
	f, _ := unwrapFileFromWriter(w)
	return f
}

func cleanPath(file string) string {
	return path.Clean(file)
}
