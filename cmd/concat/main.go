package main

import (
	"fmt"
	"io"
	"os"

	"github.com/midbel/concat"
	flag "github.com/ogier/pflag"
)

const help = `usage: %s [OPTION]... [FILE]...

Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, concat.NopCloser(os.Stdout), os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		set     = flag.NewFlagSet(concat.ProgName, flag.ContinueOnError)
		number  = set.BoolP("number", "n", false, "number all output lines")
		ends    = set.BoolP("show-ends", "E", false, "display $ at end of each line")
		version = set.BoolP("version", "V", false, "print version and exit")
		usage   = set.BoolP("help", "h", false, "display this help and exit")
	)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprintf(stderr, help, concat.ProgName)
		set.PrintDefaults()
	}
	if err := set.Parse(args); err != nil {
		return 2
	}
	if *usage {
		set.Usage()
		return 0
	}
	if *version {
		fmt.Fprintln(stdout, concat.ProgName, concat.Version)
		return 0
	}

	p, err := concat.New(concat.WithStdin(stdin), concat.WithStderr(stderr))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	res, err := p.Process(concat.Resolve(set.Args(), *number, *ends), stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", concat.ProgName, err)
		return 1
	}
	if !res.Ok() {
		return 1
	}
	return 0
}
