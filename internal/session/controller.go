package session

import (
	"sync"
	"time"
)

// State of the inactivity lifecycle. A controller starts Active and
// only ever moves forward: Active -> Expiring -> Reset.
type State int

const (
	StateActive State = iota
	StateExpiring
	StateReset
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExpiring:
		return "expiring"
	case StateReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Hooks are the expiry actions, run in this order: clear the cart
// (synchronous, before anything else can observe the session), drop
// the cached menu so the next session refetches, then signal the
// return-to-start navigation.
type Hooks struct {
	ClearCart         func()
	InvalidateCatalog func()
	Navigate          func()
}

// Controller owns one session's inactivity countdown. Qualifying
// interactions call Touch to push the deadline out; once the deadline
// passes the controller runs its hooks exactly once. Interactions that
// arrive after expiry has begun are ignored — the reset is not
// cancellable mid-flight.
type Controller struct {
	timeout time.Duration
	hooks   Hooks

	mu       sync.Mutex
	state    State
	deadline time.Time
	timer    *time.Timer
	expired  chan struct{}
}

func NewController(timeout time.Duration, hooks Hooks) *Controller {
	c := &Controller{
		timeout: timeout,
		hooks:   hooks,
		state:   StateActive,
		expired: make(chan struct{}),
	}
	c.deadline = time.Now().Add(timeout)
	c.timer = time.AfterFunc(timeout, c.expire)
	return c
}

// Touch restarts the countdown. It does not change state; while
// Expiring or Reset it is a no-op.
func (c *Controller) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	c.deadline = time.Now().Add(c.timeout)
	c.timer.Reset(c.timeout)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Expired is closed once the reset has fully completed.
func (c *Controller) Expired() <-chan struct{} {
	return c.expired
}

// Stop tears the controller down without running the expiry hooks.
// Used when the owning view is dismissed; no further transitions
// happen after it returns.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	c.timer.Stop()
	c.state = StateReset
}

func (c *Controller) expire() {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	// A Touch may have slipped in between the timer firing and this
	// callback taking the lock; honor the pushed-out deadline.
	if remaining := time.Until(c.deadline); remaining > 0 {
		c.timer.Reset(remaining)
		c.mu.Unlock()
		return
	}
	c.state = StateExpiring
	c.mu.Unlock()

	if h := c.hooks.ClearCart; h != nil {
		h()
	}
	if h := c.hooks.InvalidateCatalog; h != nil {
		h()
	}
	if h := c.hooks.Navigate; h != nil {
		h()
	}

	c.mu.Lock()
	c.state = StateReset
	c.mu.Unlock()
	close(c.expired)
}
