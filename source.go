package concat

const stdinMarker = "-"

type Source struct {
	path  string
	stdin bool
}

var Stdin = Source{stdin: true}

func Path(p string) Source {
	return Source{path: p}
}

func (s Source) IsStdin() bool {
	return s.stdin
}

func (s Source) Path() string {
	return s.path
}

func (s Source) String() string {
	if s.stdin {
		return stdinMarker
	}
	return s.path
}

type Config struct {
	Number   bool
	ShowEnds bool
	Sources  []Source
}

// Resolve builds the Config of a run from the list of files given on the
// command line. The marker "-" designates standard input, as does an empty
// list.
func Resolve(files []string, number, ends bool) Config {
	cfg := Config{
		Number:   number,
		ShowEnds: ends,
	}
	for _, f := range files {
		if f == stdinMarker {
			cfg.Sources = append(cfg.Sources, Stdin)
			continue
		}
		cfg.Sources = append(cfg.Sources, Path(f))
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = append(cfg.Sources, Stdin)
	}
	return cfg
}

func (c Config) sources() []Source {
	if len(c.Sources) == 0 {
		return []Source{Stdin}
	}
	return c.Sources
}
