package domain

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrSerialization = goerr.New("failed to write JSON string", goerr.ID("ErrSerialization"))
	ErrTransport     = goerr.New("failed to send HTTP POST", goerr.ID("ErrTransport"))
)

// ErrorKind tags an error with the failure category it belongs to
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindSerialization
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Classify reports which category err belongs to. nil and errors not produced
// by this module are KindUnknown.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrSerialization):
		return KindSerialization
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindUnknown
	}
}
