package internal

import "github.com/pkg/errors"

// The arithmetic helpers here are pure value math; returning an error from
// every one of them would bloat signatures for a failure that only exists at
// construction time (unitizing a zero-length vector). Instead, degenerate
// input panics, and the public API recovers to convert to an error.

type GeomError error

// Panic with a GeomError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeomPanicRecover(r interface{}) error {
	if r != nil {
		if geomError, ok := r.(GeomError); ok {
			return geomError
		}
		panic(r)
	}
	return nil
}
