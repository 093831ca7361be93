package concat

import (
	"io"
	"io/fs"
	"os"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

type osOpener struct{}

// OS opens sources from the local file system.
func OS() Opener {
	return osOpener{}
}

func (_ osOpener) Open(file string) (io.ReadCloser, error) {
	return os.Open(file)
}

type fsOpener struct {
	fsys fs.FS
}

// FS opens sources from fsys. Paths are cleaned of their leading "./" and
// must otherwise be valid fs.FS paths.
func FS(fsys fs.FS) Opener {
	return fsOpener{
		fsys: fsys,
	}
}

func (o fsOpener) Open(file string) (io.ReadCloser, error) {
	return o.fsys.Open(cleanPath(file))
}
