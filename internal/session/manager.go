package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"kioskqr/internal/cart"
	"kioskqr/internal/catalog"
	"kioskqr/internal/combo"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrNoDraft         = errors.New("no combo configuration in progress")
	ErrUnknownGroup    = errors.New("unknown combo group")
	ErrUnknownItem     = errors.New("unknown combo item")
)

// Draft is the single combo-configuration working set of a session:
// the combo product being configured and the selections made so far.
// Starting a new draft discards an uncommitted one.
type Draft struct {
	Product    *catalog.Product `json:"product"`
	Selections combo.Selections `json:"selections"`
}

// GroupProgress pairs a group name with its completion percentage for
// the UI's per-group indicators.
type GroupProgress struct {
	Group    string  `json:"group"`
	Progress float64 `json:"progress"`
}

// Session is one kiosk customer's state: an opaque token, the cart
// container, the inactivity controller, and at most one combo draft.
type Session struct {
	Token      string
	Cart       *cart.Container
	Controller *Controller

	mu    sync.Mutex
	draft *Draft
}

// StartDraft begins configuring a combo product, prefilled from the
// product's default selections. Any previous uncommitted draft is
// discarded.
func (s *Session) StartDraft(p *catalog.Product) (*Draft, error) {
	if !p.IsCombo {
		return nil, cart.ErrNotCombo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &Draft{Product: p, Selections: combo.DefaultSelections(p)}
	return s.draft, nil
}

// Draft returns the configuration in progress, or ErrNoDraft.
func (s *Session) Draft() (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, ErrNoDraft
	}
	return s.draft, nil
}

// SetDraftSelection records a quantity for one combo item in the
// draft. Quantity zero removes the selection; negative quantities are
// a caller bug.
func (s *Session) SetDraftSelection(groupName, itemID string, quantity int) error {
	if quantity < 0 {
		return cart.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	group := s.draft.Product.Group(groupName)
	if group == nil {
		return ErrUnknownGroup
	}
	item := group.Item(itemID)
	if item == nil {
		return ErrUnknownItem
	}
	s.draft.Selections.Set(groupName, item, quantity)
	return nil
}

// DraftProgress reports per-group completion for the draft.
func (s *Session) DraftProgress() ([]GroupProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, ErrNoDraft
	}
	groups := s.draft.Product.ComboGroups
	progress := make([]GroupProgress, 0, len(groups))
	for i := range groups {
		progress = append(progress, GroupProgress{
			Group:    groups[i].Name,
			Progress: combo.GroupProgress(&groups[i], s.draft.Selections),
		})
	}
	return progress, nil
}

// ValidateDraft runs the combo rules over the draft without
// committing anything.
func (s *Session) ValidateDraft() (combo.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return combo.Result{}, ErrNoDraft
	}
	return combo.ValidateSelections(s.draft.Product.ComboGroups, s.draft.Selections), nil
}

// CommitDraft validates the draft and, on success, freezes it into a
// cart line and discards the working set. On a validation failure the
// draft stays open for the customer to fix.
func (s *Session) CommitDraft(quantity int, notes string) (*cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, ErrNoDraft
	}
	line, err := s.Cart.CommitComboLine(s.draft.Product, quantity, s.draft.Selections, notes)
	if err != nil {
		return nil, err
	}
	s.draft = nil
	return line, nil
}

// CancelDraft discards the configuration in progress, if any.
func (s *Session) CancelDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// Manager is the registry of live kiosk sessions. A session that
// expires removes itself; the hosting UI then sees session-gone
// responses and returns to the start screen.
type Manager struct {
	catalog *catalog.Service
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(catalogService *catalog.Service, timeout time.Duration) *Manager {
	return &Manager{
		catalog:  catalogService,
		timeout:  timeout,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session with an empty cart for the given
// order type.
func (m *Manager) Create(orderType catalog.OrderType) *Session {
	token := uuid.New().String()
	container := cart.NewContainer(orderType)

	s := &Session{
		Token: token,
		Cart:  container,
	}
	s.Controller = NewController(m.timeout, Hooks{
		ClearCart:         container.Clear,
		InvalidateCatalog: m.catalog.Invalidate,
		Navigate:          func() { m.remove(token) },
	})

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	return s
}

// Get looks a session up by token.
func (m *Manager) Get(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close tears a session down without running the expiry actions. Used
// when the customer leaves the ordering flow deliberately.
func (m *Manager) Close(token string) error {
	m.mu.Lock()
	s, ok := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Controller.Stop()
	return nil
}

func (m *Manager) remove(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
