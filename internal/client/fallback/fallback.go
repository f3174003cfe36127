// Package fallback substitutes a local operation for a failed remote one,
// presenting callers with a single result shape tagged by provenance.
package fallback

import "context"

type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Result is the tagged union returned by Execute: the payload plus which
// store produced it.
type Result struct {
	Source  Source
	Payload any
}

// Op is one side of a dual-path operation.
type Op func(ctx context.Context) (any, error)

// Execute runs remoteOp and, on ANY failure, runs localOp instead — the
// fallback is unconditional, not selective by error kind. Errors from localOp
// (such as a duplicate-email conflict) propagate to the caller. Exactly one
// of the two operations performs its side effects.
func Execute(ctx context.Context, remoteOp, localOp Op) (Result, error) {
	payload, err := remoteOp(ctx)
	if err == nil {
		return Result{Source: SourceRemote, Payload: payload}, nil
	}

	payload, err = localOp(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Source: SourceLocal, Payload: payload}, nil
}
