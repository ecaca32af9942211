package markettest

import "github.com/iov-one/artmarket"

// Handler is a mock implementation of the handler interface that counts
// calls and returns declared results.
type Handler struct {
	checkCall   int
	CheckResult artmarket.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult artmarket.DeliverResult
	DeliverErr    error
}

var _ artmarket.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx artmarket.Context, db artmarket.KVStore, tx artmarket.Tx) (*artmarket.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
