package concat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/midbel/concat/internal/lines"
)

const (
	ProgName = "concat"
	Version  = "0.1.0"
)

const (
	numberWidth = 6
	numberSep   = '\t'
	endMarker   = '$'
)

// Processor concatenates sources to a single output. Sources are read one
// at a time in the order they are given. A source that can not be opened
// or read is reported and skipped; only a failure of the output stops a
// run.
type Processor struct {
	stdin  io.Reader
	stderr io.Writer
	opener Opener
	size   int
	name   string
}

func New(options ...Option) (*Processor, error) {
	p := Processor{
		stdin:  os.Stdin,
		stderr: os.Stderr,
		opener: OS(),
		size:   lines.DefaultSize,
		name:   ProgName,
	}
	for _, o := range options {
		if err := o(&p); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

type run struct {
	Config

	out  *bufio.Writer
	sink *os.File
	line int
	num  []byte
}

func (p *Processor) Process(cfg Config, w io.Writer) (Outcome, error) {
	var (
		res Outcome
		r   = run{
			Config: cfg,
			out:    bufio.NewWriterSize(w, p.size),
			sink:   sinkFile(w),
			line:   1,
		}
	)
	for _, src := range cfg.sources() {
		kind, err := p.process(&r, src)
		if err == nil {
			continue
		}
		if kind == SinkWriteFailure {
			return res, &SinkError{Err: err}
		}
		e := res.record(src, kind, err)
		p.report(e)
	}
	if err := r.out.Flush(); err != nil {
		return res, &SinkError{Err: err}
	}
	return res, nil
}

func (p *Processor) process(r *run, src Source) (Kind, error) {
	if r.sink != nil && !src.IsStdin() {
		// the sink has to hold everything written so far before it is
		// compared with the source
		if err := r.out.Flush(); err != nil {
			return SinkWriteFailure, err
		}
	}
	rc, err := p.open(src, r.sink)
	if err != nil {
		return SourceUnreadable, err
	}
	defer rc.Close()

	scan := lines.NewScanner(rc, p.size)
	for scan.Scan() {
		if err := r.write(scan.Line()); err != nil {
			return SinkWriteFailure, err
		}
		if scan.Buffered() > 0 {
			continue
		}
		if err := r.out.Flush(); err != nil {
			return SinkWriteFailure, err
		}
	}
	if err := scan.Err(); err != nil {
		return SourceReadFailure, err
	}
	return 0, nil
}

func (p *Processor) open(src Source, out *os.File) (io.ReadCloser, error) {
	if src.IsStdin() {
		return io.NopCloser(p.stdin), nil
	}
	rc, err := p.opener.Open(src.Path())
	if err != nil {
		return nil, err
	}
	if isDir(rc) {
		rc.Close()
		return nil, ErrIsDirectory
	}
	if sameFile(rc, out) {
		rc.Close()
		return nil, ErrSameFile
	}
	return rc, nil
}

func (p *Processor) report(err error) {
	if p.name != "" {
		fmt.Fprintf(p.stderr, "%s: ", p.name)
	}
	fmt.Fprintln(p.stderr, err)
}

func (r *run) write(li lines.Line) error {
	if r.Number && li.Start {
		r.num = appendNumber(r.num[:0], r.line)
		r.line++
		if _, err := r.out.Write(r.num); err != nil {
			return err
		}
	}
	if _, err := r.out.Write(li.Text); err != nil {
		return err
	}
	if !li.End {
		return nil
	}
	if r.ShowEnds {
		if err := r.out.WriteByte(endMarker); err != nil {
			return err
		}
	}
	if li.Terminated {
		return r.out.WriteByte(lines.Terminator)
	}
	return nil
}

func appendNumber(buf []byte, n int) []byte {
	str := strconv.Itoa(n)
	for i := len(str); i < numberWidth; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, str...)
	return append(buf, numberSep)
}
