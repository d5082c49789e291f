package llm

import (
	"context"
	"errors"
)

// ErrNoData marks a recoverable extraction failure: the model answered but
// nothing usable could be parsed out of it. Callers treat it as "this text
// carries no operational data", never as a pipeline-fatal error.
var ErrNoData = errors.New("llm: no extractable data")

// Generator is the external text-reasoning call. Implementations send one
// prompt and return the raw completion text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Field length caps applied during normalization.
const (
	MaxDescripcionLen = 100
	MaxNotasLen       = 500
)
