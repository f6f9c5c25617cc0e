// Package store owns one game state and is the only way to change it.
package store

import (
	"sync"

	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/notice"
	"github.com/DedS3t/monopoly-backend/app/reducers"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

type Listener func(state models.GameState)

type pass struct {
	action  actions.Action
	context *rules.Context
	next    models.GameState
}

type stage struct {
	name string
	run  func(s *Store, p *pass) error
}

// pipeline is the fixed order every dispatch goes through.
var pipeline = []stage{
	{"resolve", func(s *Store, p *pass) error {
		p.context = rules.Resolve(p.action, s.state, s.config)
		return nil
	}},
	{"validate", func(s *Store, p *pass) error {
		return s.validator.Validate(p.context)
	}},
	{"notice", func(s *Store, p *pass) error {
		s.validator.Notice(p.action.Notice, p.context)
		return nil
	}},
	{"reduce", func(s *Store, p *pass) error {
		p.next = reducers.Reduce(s.state, p.context.Action)
		return nil
	}},
}

type Store struct {
	dispatch sync.Mutex // held for a whole dispatch, listeners included

	mu        sync.Mutex
	state     models.GameState
	config    models.Config
	validator *rules.Validator

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func New(state models.GameState, config models.Config, catalog notice.Catalog) *Store {
	return NewWithValidator(state, config, rules.NewValidator(catalog))
}

func NewWithValidator(state models.GameState, config models.Config, v *rules.Validator) *Store {
	return &Store{
		state:     state,
		config:    config,
		validator: v,
		listeners: map[int]Listener{},
	}
}

// Dispatch validates a and, when every rule holds, swaps in the reduced
// state and notifies listeners. Dispatches on one store are serialized,
// listeners included, so a listener must not dispatch to the same store.
func (s *Store) Dispatch(a actions.Action) (models.GameState, error) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	p := &pass{action: a}
	for _, st := range pipeline {
		if err := st.run(s, p); err != nil {
			state := s.state
			s.mu.Unlock()
			return state, err
		}
	}
	s.state = p.next
	state := s.state
	s.mu.Unlock()

	s.notify(state)
	return state, nil
}

func (s *Store) GetState() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Config() models.Config {
	return s.config
}

func (s *Store) Subscribe(l Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) notify(state models.GameState) {
	s.lmu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.lmu.Unlock()
	for _, l := range ls {
		l(state)
	}
}
