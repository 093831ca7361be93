package concat

import (
	"fmt"
	"io"
	"strings"

	"github.com/midbel/concat/internal/lines"
)

type Option func(*Processor) error

func WithStdin(r io.Reader) Option {
	return func(p *Processor) error {
		if r == nil {
			return fmt.Errorf("stdin: nil reader")
		}
		p.stdin = r
		return nil
	}
}

// WithStderr sets where diagnostics are written. A nil writer discards them.
func WithStderr(w io.Writer) Option {
	return func(p *Processor) error {
		if w == nil {
			w = io.Discard
		}
		p.stderr = w
		return nil
	}
}

func WithOpener(o Opener) Option {
	return func(p *Processor) error {
		if o == nil {
			return fmt.Errorf("opener: nil opener")
		}
		p.opener = o
		return nil
	}
}

func WithBufferSize(size int) Option {
	return func(p *Processor) error {
		if size < lines.MinSize {
			return fmt.Errorf("buffer size: %d too small (minimum %d)", size, lines.MinSize)
		}
		p.size = size
		return nil
	}
}

func WithName(name string) Option {
	return func(p *Processor) error {
		p.name = strings.TrimSpace(name)
		return nil
	}
}
