// Package answer defines the retrieval-augmented fallback boundary: queries
// the intent router cannot parse are handed to an Answerer verbatim.
package answer

import (
	"context"
	"errors"
)

// Answerer turns a free-text question into an answer string. Implementations
// may call out to slow external services; honor ctx.
type Answerer interface {
	Answer(ctx context.Context, query string) (string, error)
}

// ErrUnavailable is returned by Unavailable for every query.
var ErrUnavailable = errors.New("retrieval answering not configured")

// Unavailable is the default Answerer when no retrieval backend is wired up.
type Unavailable struct{}

func (Unavailable) Answer(context.Context, string) (string, error) {
	return "", ErrUnavailable
}
