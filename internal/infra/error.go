package infra

import (
	"errors"

	"rentacar/internal/pkg/errs"
)

type InfraErrorKind string

// InfraError classifies failures from the external APIs and the session
// store so the usecase layer can branch on kind without knowing which
// backend produced it.
type InfraError struct {
	Kind InfraErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e InfraError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e InfraError) Unwrap() error {
	return e.err
}

// WrapInfraErr wraps a low-level error with a kind; the kind defaults to
// UPSTREAM_FAILURE when omitted.
func WrapInfraErr(msg string, err error, kind ...InfraErrorKind) error {
	k := KindUpstreamFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return InfraError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind InfraErrorKind) bool {
	var e InfraError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound          InfraErrorKind = "NOT_FOUND"
	KindUpstreamFailure   InfraErrorKind = "UPSTREAM_FAILURE"
	KindMalformedResponse InfraErrorKind = "MALFORMED_RESPONSE"
	KindUnauthenticated   InfraErrorKind = "UNAUTHENTICATED"
	KindStoreFailure      InfraErrorKind = "STORE_FAILURE"
)
