package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/artmarket"
	"github.com/iov-one/artmarket/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the registered handler.
type Router struct {
	handlers map[string]artmarket.Handler
}

var _ artmarket.Registry = (*Router)(nil)
var _ artmarket.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]artmarket.Handler),
	}
}

// Handle implements Registry interface. Path of the message is used as the
// routing destination.
func (r *Router) Handle(m artmarket.Msg, h artmarket.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPathHandler that returns an error for any call.
func (r *Router) Handler(path string) artmarket.Handler {
	h, ok := r.handlers[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx artmarket.Context, store artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx artmarket.Context, store artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg.Path())
	return h.Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound error regardless of the
// arguments provided
type noSuchPathHandler struct {
	path string
}

var _ artmarket.Handler = noSuchPathHandler{}

// Check always returns ErrNotFound
func (h noSuchPathHandler) Check(artmarket.Context, artmarket.KVStore, artmarket.Tx) (*artmarket.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

// Deliver always returns ErrNotFound
func (h noSuchPathHandler) Deliver(artmarket.Context, artmarket.KVStore, artmarket.Tx) (*artmarket.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
