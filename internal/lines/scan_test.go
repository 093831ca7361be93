package lines_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/midbel/concat/internal/lines"
)

type want struct {
	Text       string
	Terminated bool
}

var scans = []struct {
	Name  string
	Input string
	Size  int
	Lines []want
}{
	{
		Name:  "empty",
		Input: "",
	},
	{
		Name:  "single-terminated",
		Input: "foo\n",
		Lines: []want{{"foo", true}},
	},
	{
		Name:  "unterminated",
		Input: "foo\nbar",
		Lines: []want{{"foo", true}, {"bar", false}},
	},
	{
		Name:  "blank-lines",
		Input: "\n\nfoo\n\n",
		Lines: []want{{"", true}, {"", true}, {"foo", true}, {"", true}},
	},
	{
		Name:  "carriage-return-kept",
		Input: "foo\r\nbar\r\n",
		Lines: []want{{"foo\r", true}, {"bar\r", true}},
	},
	{
		Name:  "longer-than-buffer",
		Input: strings.Repeat("a", 100) + "\n" + strings.Repeat("b", 40),
		Size:  lines.MinSize,
		Lines: []want{{strings.Repeat("a", 100), true}, {strings.Repeat("b", 40), false}},
	},
	{
		Name:  "exactly-buffer",
		Input: strings.Repeat("x", 15) + "\n" + strings.Repeat("y", 16),
		Size:  lines.MinSize,
		Lines: []want{{strings.Repeat("x", 15), true}, {strings.Repeat("y", 16), false}},
	},
	{
		Name:  "multiple-of-buffer",
		Input: strings.Repeat("z", 32),
		Size:  lines.MinSize,
		Lines: []want{{strings.Repeat("z", 32), false}},
	},
	{
		Name:  "size-below-minimum",
		Input: "foobar\nfoo",
		Size:  1,
		Lines: []want{{"foobar", true}, {"foo", false}},
	},
}

func TestScanner(t *testing.T) {
	readers := []struct {
		Name string
		Wrap func(io.Reader) io.Reader
	}{
		{Name: "plain", Wrap: func(r io.Reader) io.Reader { return r }},
		{Name: "one-byte", Wrap: iotest.OneByteReader},
		{Name: "half", Wrap: iotest.HalfReader},
		{Name: "data-err", Wrap: iotest.DataErrReader},
	}
	for _, r := range readers {
		for _, d := range scans {
			t.Run(r.Name+"/"+d.Name, func(t *testing.T) {
				size := d.Size
				if size < lines.MinSize {
					size = lines.DefaultSize
				}
				scan := lines.NewScanner(r.Wrap(strings.NewReader(d.Input)), d.Size)
				got := collect(t, scan, size)
				if err := scan.Err(); err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if len(got) != len(d.Lines) {
					t.Fatalf("lines mismatched! want %d, got %d (%+v)", len(d.Lines), len(got), got)
				}
				for i := range got {
					if got[i] != d.Lines[i] {
						t.Errorf("line %d mismatched! want %+v, got %+v", i+1, d.Lines[i], got[i])
					}
				}
				if scan.Scan() {
					t.Errorf("scanner should stay exhausted")
				}
			})
		}
	}
}

func TestScannerBounded(t *testing.T) {
	var (
		size  = 64
		total = 1 << 20
		scan  = lines.NewScanner(io.LimitReader(filler{}, int64(total)), size)
		read  int
		frags int
	)
	for scan.Scan() {
		li := scan.Line()
		if len(li.Text) > size {
			t.Fatalf("fragment larger than buffer: %d > %d", len(li.Text), size)
		}
		if li.Terminated {
			t.Fatalf("unexpected terminated fragment")
		}
		read += len(li.Text)
		frags++
	}
	if err := scan.Err(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if read != total {
		t.Fatalf("bytes mismatched! want %d, got %d", total, read)
	}
	if frags < total/size {
		t.Fatalf("line should be split in fragments, got %d", frags)
	}
}

func TestScannerError(t *testing.T) {
	failure := errors.New("device gone")

	t.Run("immediate", func(t *testing.T) {
		scan := lines.NewScanner(iotest.ErrReader(failure), 0)
		if scan.Scan() {
			t.Fatalf("no line expected from a failing reader")
		}
		if !errors.Is(scan.Err(), failure) {
			t.Fatalf("unexpected error: want %s, got %v", failure, scan.Err())
		}
	})
	t.Run("after-lines", func(t *testing.T) {
		r := io.MultiReader(strings.NewReader("foo\nbar"), iotest.ErrReader(failure))
		scan := lines.NewScanner(r, 0)
		if !scan.Scan() {
			t.Fatalf("first line expected: %v", scan.Err())
		}
		if got := string(scan.Line().Text); got != "foo" {
			t.Fatalf("first line mismatched! want foo, got %s", got)
		}
		if !scan.Scan() {
			t.Fatalf("bytes read before the failure expected")
		}
		li := scan.Line()
		if string(li.Text) != "bar" || !li.Start || li.End {
			t.Fatalf("partial line mismatched! got %+v", li)
		}
		if scan.Scan() {
			t.Fatalf("scanner should stop after an error")
		}
		if !errors.Is(scan.Err(), failure) {
			t.Fatalf("unexpected error: want %s, got %v", failure, scan.Err())
		}
	})
}

func TestScannerBuffered(t *testing.T) {
	scan := lines.NewScanner(strings.NewReader("foo\nbar\n"), 0)
	if !scan.Scan() {
		t.Fatalf("line expected")
	}
	if n := scan.Buffered(); n != 4 {
		t.Errorf("buffered mismatched! want 4, got %d", n)
	}
	scan.Scan()
	if n := scan.Buffered(); n != 0 {
		t.Errorf("buffered mismatched! want 0, got %d", n)
	}
}

// collect joins the fragments of the scanner back into lines and checks
// that fragments are well formed.
func collect(t *testing.T, scan *lines.Scanner, size int) []want {
	t.Helper()

	var (
		list []want
		curr strings.Builder
		open bool
	)
	for scan.Scan() {
		li := scan.Line()
		if len(li.Text) > size {
			t.Fatalf("fragment larger than buffer: %d > %d", len(li.Text), size)
		}
		if li.Start == open {
			t.Fatalf("fragment start mismatched! start=%t while line open=%t", li.Start, open)
		}
		if li.Terminated && !li.End {
			t.Fatalf("terminated fragment should end its line")
		}
		curr.Write(li.Text)
		open = !li.End
		if li.End {
			list = append(list, want{curr.String(), li.Terminated})
			curr.Reset()
		}
	}
	if open {
		t.Fatalf("last line never ended")
	}
	return list
}

type filler struct{}

func (_ filler) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 'a'
	}
	return len(b), nil
}
