package socket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/room"
	log "github.com/sirupsen/logrus"
)

// Conn is the part of a socket.io connection the handlers use. The context
// slot holds the id of the game the connection is in.
type Conn interface {
	room.Client
	Context() interface{}
	SetContext(v interface{})
}

type connectPayload struct {
	GameID string `json:"game_id"`
}

type joinPayload struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type votePayload struct {
	ID  string `json:"id"`
	Yes bool   `json:"yes"`
}

// Handlers turns socket events into room calls.
type Handlers struct {
	Rooms *room.Registry
}

func gameOf(s Conn) string {
	id, _ := s.Context().(string)
	return id
}

func (h *Handlers) Connect(ctx context.Context, s Conn, msg string) {
	var p connectPayload
	if err := json.Unmarshal([]byte(msg), &p); err != nil || p.GameID == "" {
		emitError(s, room.EventConnect, "bad-request", "game_id is required")
		return
	}
	if prev := gameOf(s); prev != "" {
		h.Rooms.Disconnect(prev, s)
		s.SetContext("")
	}
	if _, err := h.Rooms.Connect(ctx, p.GameID, s); err != nil {
		if errors.Is(err, models.ErrGameNotFound) {
			emitError(s, room.EventConnect, "not-found", "Invalid game")
			return
		}
		log.WithError(err).WithField("game", p.GameID).Error("connecting to room")
		emitError(s, room.EventConnect, "internal", "The game could not be loaded")
		return
	}
	s.SetContext(p.GameID)
}

func (h *Handlers) Join(ctx context.Context, s Conn, msg string) {
	var p joinPayload
	if err := json.Unmarshal([]byte(msg), &p); err != nil || p.Token == "" {
		emitError(s, room.EventJoin, "bad-request", "name and token are required")
		return
	}
	if r, ok := h.room(s, room.EventJoin); ok {
		r.Join(ctx, s, p.Name, p.Token)
	}
}

func (h *Handlers) Leave(s Conn) {
	if r, ok := h.room(s, room.EventLeave); ok {
		r.Leave(s)
	}
}

func (h *Handlers) Vote(s Conn, msg string) {
	var p votePayload
	if err := json.Unmarshal([]byte(msg), &p); err != nil {
		return
	}
	if r, ok := h.room(s, "poll-vote"); ok {
		r.Vote(s, p.ID, p.Yes)
	}
}

// Exec runs a game command. An empty payload means no arguments.
func (h *Handlers) Exec(ctx context.Context, s Conn, name, msg string) {
	var args room.Args
	if msg != "" {
		if err := json.Unmarshal([]byte(msg), &args); err != nil {
			emitError(s, name, "bad-request", "Malformed request")
			return
		}
	}
	if r, ok := h.room(s, name); ok {
		r.Exec(ctx, s, name, args)
	}
}

func (h *Handlers) Disconnect(s Conn) {
	if id := gameOf(s); id != "" {
		h.Rooms.Disconnect(id, s)
	}
}

func (h *Handlers) room(s Conn, event string) (*room.Room, bool) {
	r, ok := h.Rooms.Get(gameOf(s))
	if !ok {
		emitError(s, event, room.ErrNotConnected.Name, room.ErrNotConnected.Message)
	}
	return r, ok
}

func emitError(s Conn, event, name, message string) {
	s.Emit(room.EventError, room.ErrorReply{Event: event, Name: name, Message: message})
}
