// Package controller drives the anonymize request lifecycle: Idle, Pending,
// back to Idle. It is the only writer of the store's IsLoading, Error, and
// Result fields; every failure from the request client is translated into the
// store's error channel and nothing propagates past Run.
package controller

import (
	"context"
	"strings"

	"github.com/studiowebux/anonctl/internal/api"
	"github.com/studiowebux/anonctl/internal/store"
)

// EmptyInputMessage is surfaced when the trimmed input text is empty. The
// guard fires before any state transition: no network call, no loading flag.
const EmptyInputMessage = "Please enter some text to anonymize"

// AnonymizeClient is the slice of the API client the controller needs.
type AnonymizeClient interface {
	Anonymize(ctx context.Context, text, documentID string) (*api.AnonymizeResult, error)
}

// Controller orchestrates one anonymize attempt at a time against the store.
type Controller struct {
	store  *store.Store
	client AnonymizeClient
}

// New creates a controller bound to the given store and client.
func New(s *store.Store, client AnonymizeClient) *Controller {
	return &Controller{store: s, client: client}
}

// Run performs one anonymization attempt with the store's current input text.
//
// An empty (trimmed) input sets the error message and returns without
// entering the pending state. A second call while an attempt is outstanding
// is a no-op: the store's Begin gate enforces single flight. Otherwise the
// controller enters pending (loading set, error cleared), invokes the client
// exactly once, and settles: result stored on success, error stored on
// failure with the prior result left untouched. The loading flag is cleared
// on every exit path past the gate.
func (c *Controller) Run(ctx context.Context) {
	text := c.store.InputText()
	if strings.TrimSpace(text) == "" {
		c.store.SetError(EmptyInputMessage)
		return
	}

	if !c.store.Begin() {
		return
	}
	defer c.store.SetLoading(false)

	result, err := c.client.Anonymize(ctx, text, "")
	if err != nil {
		c.store.SetError(err.Error())
		return
	}
	c.store.SetResult(result)
}
