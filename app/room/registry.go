package room

import (
	"context"
	"sync"
	"time"

	"github.com/DedS3t/monopoly-backend/app/notice"
	log "github.com/sirupsen/logrus"
)

const DefaultStorageTimeout = 5 * time.Second

// Registry holds the live rooms of the process, one per session id. A room
// lives while at least one client is connected to it. The registry lock is
// never held while waiting on a room, so a busy room cannot stall the rest.
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	storage Storage
	catalog notice.Catalog

	// StorageTimeout bounds every load and save. Set it before the first
	// Connect.
	StorageTimeout time.Duration
}

func NewRegistry(storage Storage, catalog notice.Catalog) *Registry {
	return &Registry{
		rooms:          map[string]*Room{},
		storage:        storage,
		catalog:        catalog,
		StorageTimeout: DefaultStorageTimeout,
	}
}

// Connect adds c to the room for id, loading the session from storage when
// no room is live for it.
func (g *Registry) Connect(ctx context.Context, id string, c Client) (*Room, error) {
	g.mu.Lock()
	room, ok := g.rooms[id]
	if ok {
		room.members[c.ID()] = true
	}
	g.mu.Unlock()
	if ok {
		room.add(c)
		return room, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.StorageTimeout)
	defer cancel()
	rec, err := g.storage.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	room, ok = g.rooms[id]
	if !ok {
		room = newRoom(rec, g.storage, g.catalog, g.StorageTimeout)
		g.rooms[id] = room
		log.WithField("room", id).Info("room loaded")
	}
	room.members[c.ID()] = true
	g.mu.Unlock()

	room.add(c)
	return room, nil
}

// Disconnect removes c from the room for id and evicts the room once it is
// empty. Its state is already persisted.
func (g *Registry) Disconnect(id string, c Client) {
	g.mu.Lock()
	room, ok := g.rooms[id]
	if !ok || !room.members[c.ID()] {
		g.mu.Unlock()
		return
	}
	delete(room.members, c.ID())
	evict := len(room.members) == 0
	if evict {
		delete(g.rooms, id)
	}
	g.mu.Unlock()

	room.remove(c)
	if evict {
		room.close()
		log.WithField("room", id).Info("room evicted")
	}
}

func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	room, ok := g.rooms[id]
	return room, ok
}

func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}
