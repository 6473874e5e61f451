// Package store holds the normalized client-side state of the catalog. Each
// slice owns one entity type and all of its mutation logic; every reducer
// step runs under the slice's mutex.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/sirupsen/logrus"
)

// ErrSuperseded is returned by a read whose result was dropped because a
// newer request was issued against the same slice before it resolved.
var ErrSuperseded = errors.New("store: superseded by a newer request")

// Error is a rejected store operation. Message is the text stored in the
// slice's Error field.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

type entity interface {
	EntityID() string
}

// cloner is implemented by entities that carry nested slices.
type cloner[T any] interface {
	Clone() T
}

// clone deep-copies v when its type knows how to.
func clone[T entity](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func cloneAll[T entity](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = clone(v)
	}
	return out
}

// State is a snapshot of one slice. Error is empty when there is none.
// Selected is a UI cursor and need not be a member of Items.
type State[T entity] struct {
	Items    []T
	Selected *T
	Loading  bool
	Error    string
}

type kind int

const (
	read kind = iota
	write
)

// slice is the reducer core shared by every entity slice. issued counts the
// requests handed out; only the most recently issued one settles the
// Loading and Error flags.
type slice[T entity] struct {
	name   string
	log    *logrus.Entry
	mu     sync.Mutex
	state  State[T]
	issued uint64
}

func newSlice[T entity](name string, log *logrus.Entry) *slice[T] {
	return &slice[T]{
		name:  name,
		log:   log.WithField("slice", name),
		state: State[T]{Items: []T{}},
	}
}

// begin moves the slice to pending and returns the request token.
func (s *slice[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.state.Loading = true
	s.state.Error = ""
	return s.issued
}

// settle commits the resolution of request token. apply runs under the lock
// and only when the result may be committed: reads need to be the latest
// request, writes always patch because the server already changed.
func (s *slice[T]) settle(ctx context.Context, token uint64, op string, k kind, err error, fallback string, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := token == s.issued
	if latest {
		s.state.Loading = false
	}

	// A write the server already accepted is applied even when the caller
	// has gone away; only unresolved or read results are dropped.
	if ctxErr := ctx.Err(); ctxErr != nil && (k == read || err != nil) {
		operationsTotal.WithLabelValues(s.name, op, "canceled").Inc()
		return ctxErr
	}

	if err != nil {
		msg := message(err, fallback)
		if latest {
			s.state.Error = msg
		}
		operationsTotal.WithLabelValues(s.name, op, "rejected").Inc()
		s.log.WithError(err).WithField("op", op).Warn(msg)
		return &Error{Op: op, Message: msg, Err: err}
	}

	if k == read && !latest {
		operationsTotal.WithLabelValues(s.name, op, "superseded").Inc()
		return ErrSuperseded
	}

	if apply != nil {
		apply()
	}
	operationsTotal.WithLabelValues(s.name, op, "fulfilled").Inc()
	return nil
}

// message resolves the user-facing error text: the server's message field
// first, the operation's fallback otherwise.
func message(err error, fallback string) string {
	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}

func (s *slice[T]) snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

func (s *slice[T]) copyState() State[T] {
	out := State[T]{
		Items:   cloneAll(s.state.Items),
		Loading: s.state.Loading,
		Error:   s.state.Error,
	}
	if out.Items == nil {
		out.Items = []T{}
	}
	if s.state.Selected != nil {
		selected := clone(*s.state.Selected)
		out.Selected = &selected
	}
	return out
}

func (s *slice[T]) setSelected(v *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v == nil {
		s.state.Selected = nil
		return
	}
	selected := clone(*v)
	s.state.Selected = &selected
}

func (s *slice[T]) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// Reducer helpers. Callers hold the lock.

func (s *slice[T]) replaceItems(items []T) {
	if items == nil {
		items = []T{}
	}
	s.state.Items = cloneAll(items)
}

func (s *slice[T]) appendItem(v T) {
	s.state.Items = append(s.state.Items, clone(v))
}

func (s *slice[T]) replaceItem(v T) {
	if i := indexOf(s.state.Items, v.EntityID()); i >= 0 {
		s.state.Items[i] = clone(v)
	}
	if s.state.Selected != nil && (*s.state.Selected).EntityID() == v.EntityID() {
		selected := clone(v)
		s.state.Selected = &selected
	}
}

func (s *slice[T]) removeItem(id string) {
	s.state.Items = remove(s.state.Items, id)
	if s.state.Selected != nil && (*s.state.Selected).EntityID() == id {
		s.state.Selected = nil
	}
}

func (s *slice[T]) selectItem(v T) {
	selected := clone(v)
	s.state.Selected = &selected
}

// reset returns the slice to its initial state. Reads still in flight become
// superseded.
func (s *slice[T]) reset() {
	s.issued++
	s.state = State[T]{Items: []T{}}
}

func indexOf[T entity](items []T, id string) int {
	return slices.IndexFunc(items, func(v T) bool { return v.EntityID() == id })
}

// remove returns items without id, leaving the input untouched.
func remove[T entity](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if v.EntityID() != id {
			out = append(out, v)
		}
	}
	return out
}
