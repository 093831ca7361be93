package concat

import (
	"errors"
	"slices"
)

type Outcome struct {
	failures []*SourceError
}

func (o *Outcome) record(src Source, kind Kind, err error) *SourceError {
	e := &SourceError{
		Source: src,
		Kind:   kind,
		Err:    err,
	}
	o.failures = append(o.failures, e)
	return e
}

func (o Outcome) Ok() bool {
	return len(o.failures) == 0
}

// Failed returns the failures of the run in the order the sources were
// given.
func (o Outcome) Failed() []*SourceError {
	return slices.Clone(o.failures)
}

func (o Outcome) Err() error {
	if o.Ok() {
		return nil
	}
	list := make([]error, len(o.failures))
	for i := range o.failures {
		list[i] = o.failures[i]
	}
	return errors.Join(list...)
}
