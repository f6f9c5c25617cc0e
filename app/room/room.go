// Package room coordinates the clients connected to one game session: it
// binds each client to a player token, serializes their commands against
// the session's store, persists every change and keeps everyone in sync.
package room

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/notice"
	"github.com/DedS3t/monopoly-backend/app/poll"
	"github.com/DedS3t/monopoly-backend/app/rules"
	"github.com/DedS3t/monopoly-backend/app/store"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUsedToken      = rules.Violation("used-token", "That token was used by another player")
	ErrAlreadyPlaying = rules.Violation("already-playing", "That token is already playing")
	ErrDenied         = rules.Violation("denied", "Your request to join was denied")
	ErrNotJoined      = rules.Violation("not-joined", "Join the game first")
	ErrNotConnected   = rules.Violation("not-connected", "Connect to the room first")
	ErrUnknownCommand = rules.Violation("unknown-command", "Unknown command")
)

type Room struct {
	id      string
	config  models.Config
	store   *store.Store
	storage Storage
	polls   *poll.Set
	log     *log.Entry

	// mu serializes commands, persistence and broadcasts so a caller hears
	// its own reply before the sync that reflects it.
	mu      sync.Mutex
	clients map[string]Client
	tokens  map[string]string // client id -> bound token
	changed *models.GameState
	gen     uint64

	// saveMu orders writes; saved is the newest generation written.
	saveMu  sync.Mutex
	saved   uint64
	timeout time.Duration

	// members is owned by the Registry and guarded by its lock.
	members map[string]bool

	unsubscribe func()
}

func newRoom(rec models.Record, storage Storage, catalog notice.Catalog, timeout time.Duration) *Room {
	r := &Room{
		id:      rec.ID,
		config:  rec.Config,
		store:   store.New(rec.State, rec.Config, catalog),
		storage: storage,
		polls:   poll.NewSet(),
		log:     log.WithField("room", rec.ID),
		clients: map[string]Client{},
		tokens:  map[string]string{},
		timeout: timeout,
		members: map[string]bool{},
	}
	// every dispatch happens with mu held, so changed needs no other guard
	r.unsubscribe = r.store.Subscribe(func(state models.GameState) {
		r.changed = &state
	})
	return r
}

func (r *Room) ID() string {
	return r.id
}

func (r *Room) Store() *store.Store {
	return r.store
}

func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Room) snapshot() Snapshot {
	players := make([]string, 0, len(r.tokens))
	for _, token := range r.tokens {
		players = append(players, token)
	}
	sort.Strings(players)
	return Snapshot{
		ID:      r.id,
		State:   r.store.GetState(),
		Config:  r.config,
		Players: players,
	}
}

func (r *Room) TokenOf(c Client) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[c.ID()]
	return token, ok
}

func (r *Room) add(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID()] = c
	r.log.WithField("client", c.ID()).Info("client connected")
	c.Emit(EventConnect, r.snapshot())
}

func (r *Room) remove(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c.ID())
	if _, bound := r.tokens[c.ID()]; bound {
		delete(r.tokens, c.ID())
		r.broadcast()
	}
	r.log.WithField("client", c.ID()).Info("client disconnected")
}

func (r *Room) close() {
	r.unsubscribe()
}

// Exec runs the named command for c as its bound player. The outcome is
// sent to c alone; a successful change is then broadcast to the room.
func (r *Room) Exec(ctx context.Context, c Client, name string, args Args) error {
	cmd, ok := Commands[name]
	if !ok {
		c.Emit(EventError, errorReply(name, ErrUnknownCommand))
		return ErrUnknownCommand
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[c.ID()]
	if !ok {
		return r.fail(c, name, ErrNotJoined)
	}
	if _, err := r.store.Dispatch(cmd(token, args)); err != nil {
		return r.fail(c, name, err)
	}
	return r.commit(ctx, c, name, func(s Snapshot) interface{} { return s })
}

// Leave unbinds the token of c without disconnecting it.
func (r *Room) Leave(c Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[c.ID()]; !ok {
		return
	}
	delete(r.tokens, c.ID())
	c.Emit(EventLeave, r.snapshot())
	r.broadcast()
}

// Vote casts the vote of c's token on poll id. Votes from unbound clients
// and on unknown polls are dropped.
func (r *Room) Vote(c Client, id string, yes bool) {
	token, ok := r.TokenOf(c)
	if !ok {
		return
	}
	r.polls.Vote(id, token, yes)
}

// commit persists pending changes, replies to c and broadcasts. Must be
// called with mu held.
func (r *Room) commit(ctx context.Context, c Client, event string, reply func(Snapshot) interface{}) error {
	var err error
	if r.changed != nil {
		rec := models.Record{ID: r.id, State: *r.changed, Config: r.config}
		r.changed = nil
		if err = r.save(ctx, rec); err != nil {
			r.log.WithError(err).Error("failed saving game")
			err = fmt.Errorf("save game %s: %w", r.id, err)
			c.Emit(EventError, ErrorReply{Event: event, Name: "storage", Message: "The game could not be saved"})
		}
	}
	if err == nil {
		c.Emit(event, reply(r.snapshot()))
	}
	r.broadcast()
	return err
}

// save writes rec within the storage timeout, even when the storage ignores
// its context. A write that finishes late never replaces a newer one.
func (r *Room) save(ctx context.Context, rec models.Record) error {
	r.gen++
	gen := r.gen
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		r.saveMu.Lock()
		defer r.saveMu.Unlock()
		if gen < r.saved {
			done <- nil
			return
		}
		err := r.storage.Save(ctx, rec)
		if err == nil {
			r.saved = gen
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Room) fail(c Client, event string, err error) error {
	r.log.WithFields(log.Fields{"client": c.ID(), "event": event}).WithError(err).Debug("request rejected")
	c.Emit(EventError, errorReply(event, err))
	return err
}

func errorReply(event string, err error) ErrorReply {
	var v *rules.Error
	if errors.As(err, &v) {
		return ErrorReply{Event: event, Name: v.Name, Message: v.Message}
	}
	return ErrorReply{Event: event, Name: "internal", Message: err.Error()}
}

// broadcast sends the whole room to every client. Must be called with mu held.
func (r *Room) broadcast() {
	snap := r.snapshot()
	for _, c := range r.clients {
		c.Emit(EventSync, snap)
	}
}

func (r *Room) boundTokens() []string {
	tokens := make([]string, 0, len(r.tokens))
	for _, token := range r.tokens {
		tokens = append(tokens, token)
	}
	return tokens
}

func (r *Room) clientFor(token string) (Client, bool) {
	for id, t := range r.tokens {
		if t == token {
			c, ok := r.clients[id]
			return c, ok
		}
	}
	return nil, false
}
