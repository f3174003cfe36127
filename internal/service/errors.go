package service

import (
	"context"
	"errors"
	"net"
)

// Error taxonomy shared by the domain services. Handlers map these onto
// HTTP statuses: ErrValidation/ErrAlreadyExists/ErrInvalidCredentials -> 400,
// ErrUnavailable -> 503, anything else -> 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrUnavailable        = errors.New("service unavailable")
)

// ClassifyStoreErr maps connectivity-level failures from the relational store
// to ErrUnavailable so handlers can answer 503 instead of 500. Anything that
// is not a transport problem is returned unchanged.
func ClassifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(ErrUnavailable, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrUnavailable, err)
	}
	return err
}
