package lookup

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
)

// Controller owns the form of the lookup page: the current state and the
// single request in flight. It is safe for concurrent use.
type Controller struct {
	reader dictionary.Reader

	mu      sync.Mutex
	state   State
	nextSeq uint64
	cancel  context.CancelFunc

	// notifyMu is taken before mu is released so observers see
	// transitions in order.
	notifyMu  sync.Mutex
	observers []func(State)
}

// Request is a submission accepted by Begin and waiting for Complete.
type Request struct {
	Word string
	Seq  uint64

	ctx    context.Context
	cancel context.CancelFunc
}

func NewController(reader dictionary.Reader) *Controller {
	return &Controller{
		reader: reader,
	}
}

// OnChange registers fn to be called after every transition with the new
// state. fn must not call back into the Controller.
func (c *Controller) OnChange(fn func(State)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin accepts a submission. An empty or whitespace-only query is rejected
// with a validation error and a nil Request. Otherwise the previous request is
// cancelled and the state moves to loading.
func (c *Controller) Begin(ctx context.Context, query string) (*Request, State) {
	word := strings.TrimSpace(query)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.nextSeq++
	seq := c.nextSeq

	var req *Request
	var event Event
	if word == "" {
		event = Rejected{Query: query, Seq: seq, Err: dictionary.NewValidationError(query)}
	} else {
		reqCtx, cancel := context.WithCancel(ctx)
		c.cancel = cancel
		req = &Request{Word: word, Seq: seq, ctx: reqCtx, cancel: cancel}
		event = Submitted{Query: query, Seq: seq}
	}
	return req, c.transition(event)
}

// Complete performs the lookup for req and settles it. A request superseded
// in the meantime leaves the state untouched.
func (c *Controller) Complete(req *Request) State {
	if req == nil {
		return c.State()
	}
	defer req.cancel()

	entry, err := c.reader.Lookup(req.ctx, req.Word)
	event := Settled{Seq: req.Seq}
	if err != nil {
		event.Err = err
	} else {
		event.Entry = &entry
	}

	c.mu.Lock()
	if c.state.IsStale(event) {
		state := c.state
		c.mu.Unlock()
		slog.Default().Debug("dropping stale lookup result",
			slog.String("word", req.Word),
			slog.Uint64("seq", req.Seq),
			slog.Uint64("current_seq", state.Seq),
		)
		return state
	}
	c.cancel = nil
	return c.transition(event)
}

// Submit runs Begin and Complete back to back.
func (c *Controller) Submit(ctx context.Context, query string) State {
	req, state := c.Begin(ctx, query)
	if req == nil {
		return state
	}
	return c.Complete(req)
}

// transition must be called with mu held; it releases mu.
func (c *Controller) transition(event Event) State {
	c.state = Reduce(c.state, event)
	state := c.state
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	for _, fn := range c.observers {
		fn(state)
	}
	return state
}
