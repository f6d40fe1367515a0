package testabilities

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports"
)

// NewTestErrorResponse creates the response body expected for the given app.Error.
func NewTestErrorResponse(t *testing.T, err app.Error) ports.Error {
	t.Helper()
	return ports.Error{
		Message: err.Slug(),
	}
}
