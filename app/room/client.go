package room

import (
	"context"

	"github.com/DedS3t/monopoly-backend/app/models"
)

// Events pushed to clients.
const (
	EventConnect = "connect-room"
	EventJoin    = "join-game"
	EventLeave   = "leave-game"
	EventSync    = "room-sync"
	EventPollNew = "poll-new"
	EventError   = "error-message"
)

// Client is one connection to a room. A go-socket.io connection satisfies
// it as is.
type Client interface {
	ID() string
	Emit(event string, args ...interface{})
}

type Storage interface {
	Load(ctx context.Context, id string) (models.Record, error)
	Save(ctx context.Context, rec models.Record) error
}

type Snapshot struct {
	ID      string           `json:"id"`
	State   models.GameState `json:"state"`
	Config  models.Config    `json:"config"`
	Players []string         `json:"players"`
}

type JoinReply struct {
	Token string   `json:"token"`
	Room  Snapshot `json:"room"`
}

type PollNotice struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ErrorReply is sent on EventError to the client whose request failed.
type ErrorReply struct {
	Event   string `json:"event"`
	Name    string `json:"name"`
	Message string `json:"message"`
}
