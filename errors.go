package concat

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound    = fs.ErrNotExist
	ErrIsDirectory = errors.New("is a directory")
	ErrSameFile    = errors.New("input file is output file")
)

type Kind int8

const (
	SourceUnreadable Kind = iota + 1
	SourceReadFailure
	SinkWriteFailure
)

// SourceNotFound is reported as SourceUnreadable. Use errors.Is with
// ErrNotFound to tell a missing source apart.
const SourceNotFound = SourceUnreadable

func (k Kind) String() string {
	switch k {
	case SourceUnreadable:
		return "source unreadable"
	case SourceReadFailure:
		return "source read failure"
	case SinkWriteFailure:
		return "sink write failure"
	default:
		return "unknown"
	}
}

type SourceError struct {
	Source Source
	Kind   Kind
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, reason(e.Err))
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) NotFound() bool {
	return errors.Is(e.Err, ErrNotFound)
}

type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("write error: %s", reason(e.Err))
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

func (_ *SinkError) Kind() Kind {
	return SinkWriteFailure
}

// reason strips the operation and the path from file system errors since
// the source is already part of the message.
func reason(err error) error {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
