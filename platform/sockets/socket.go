package socket

import (
	"context"
	"net/http"

	"github.com/DedS3t/monopoly-backend/app/room"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

const EventVote = "poll-vote"

// CreateSocketIOServer registers every room event on a new socket.io server.
func CreateSocketIOServer(h *Handlers) (*socketio.Server, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		log.WithField("client", s.ID()).Debug("socket connected")
		return nil
	})

	server.OnEvent("/", room.EventConnect, func(s socketio.Conn, msg string) {
		h.Connect(context.Background(), s, msg)
	})
	server.OnEvent("/", room.EventJoin, func(s socketio.Conn, msg string) {
		h.Join(context.Background(), s, msg)
	})
	server.OnEvent("/", room.EventLeave, func(s socketio.Conn) {
		h.Leave(s)
	})
	server.OnEvent("/", EventVote, func(s socketio.Conn, msg string) {
		h.Vote(s, msg)
	})
	for _, name := range room.CommandNames() {
		name := name
		server.OnEvent("/", name, func(s socketio.Conn, msg string) {
			h.Exec(context.Background(), s, name, msg)
		})
	}

	server.OnError("/", func(s socketio.Conn, e error) {
		entry := log.WithError(e)
		if s != nil {
			entry = entry.WithField("client", s.ID())
		}
		entry.Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.WithFields(log.Fields{"client": s.ID(), "reason": reason}).Debug("socket disconnected")
		h.Disconnect(s)
	})

	return server, nil
}

// Serve runs the socket.io server on addr until it fails.
func Serve(server *socketio.Server, addr string, origins []string) error {
	go func() {
		if err := server.Serve(); err != nil {
			log.WithError(err).Error("socket.io server stopped")
		}
	}()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	log.WithField("addr", addr).Info("socket.io listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
