// Package handlers implements the HTTP endpoints. Request bodies are decoded
// into typed inputs: unknown fields are dropped and a field of the wrong JSON
// type, such as "current_stock":"5", rejects the request with 400.
package handlers

import (
	"time"

	"munshiji/database"
	"munshiji/reports"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the store API. Build it with New.
type Handler struct {
	store     *database.Store
	tokens    utils.TokenIssuer
	random    reports.Random
	location  *time.Location
	now       func() time.Time
	startedAt time.Time
}

// Options carries the dependencies of a Handler. Zero fields get defaults.
type Options struct {
	Tokens   utils.TokenIssuer
	Random   reports.Random
	Location *time.Location
	Now      func() time.Time
}

// New creates a handler over store.
func New(store *database.Store, opts Options) *Handler {
	h := &Handler{
		store:    store,
		tokens:   opts.Tokens,
		random:   opts.Random,
		location: opts.Location,
		now:      opts.Now,
	}
	if h.tokens == nil {
		h.tokens = utils.DemoTokenIssuer{}
	}
	if h.random == nil {
		h.random = reports.DefaultRandom
	}
	if h.location == nil {
		h.location = time.UTC
	}
	if h.now == nil {
		h.now = time.Now
	}
	h.startedAt = h.now()
	return h
}

// parseBody decodes the JSON body into v whatever the Content-Type. An empty
// body leaves v unchanged.
func parseBody(c *fiber.Ctx, v interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
