package room

import (
	"context"
	"fmt"

	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/selectors"
	log "github.com/sirupsen/logrus"
)

// Join binds c to token. The first player of a room is let in directly;
// after that the players at the table vote on it.
func (r *Room) Join(ctx context.Context, c Client, name, token string) error {
	r.mu.Lock()
	if err := r.checkJoin(c, name, token); err != nil {
		err = r.fail(c, EventJoin, err)
		r.mu.Unlock()
		return err
	}
	if len(r.store.GetState().Players) == 0 {
		defer r.mu.Unlock()
		return r.admit(ctx, c, name, token)
	}

	roster := r.boundTokens()
	p := r.polls.Open(fmt.Sprintf("%s would like to join as %s", name, token), roster, r.config.PollTimeout.Std())
	for _, t := range roster {
		if voter, ok := r.clientFor(t); ok {
			voter.Emit(EventPollNew, PollNotice{ID: p.ID, Message: p.Message})
		}
	}
	r.log.WithFields(log.Fields{"poll": p.ID, "token": token}).Info("join poll opened")
	r.mu.Unlock()

	admitted := p.Wait(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if !admitted {
		return r.fail(c, EventJoin, ErrDenied)
	}
	// the room may have changed while the poll ran
	if err := r.checkJoin(c, name, token); err != nil {
		return r.fail(c, EventJoin, err)
	}
	return r.admit(ctx, c, name, token)
}

func (r *Room) checkJoin(c Client, name, token string) error {
	if _, ok := r.clients[c.ID()]; !ok {
		return ErrNotConnected
	}
	if player, ok := selectors.GetPlayer(r.store.GetState(), token); ok && player.Name != name {
		return ErrUsedToken
	}
	if _, bound := r.tokens[c.ID()]; bound {
		return ErrAlreadyPlaying
	}
	if _, playing := r.clientFor(token); playing {
		return ErrAlreadyPlaying
	}
	return nil
}

// admit records the player if it is new and binds c to token. Must be
// called with mu held.
func (r *Room) admit(ctx context.Context, c Client, name, token string) error {
	if _, returning := selectors.GetPlayer(r.store.GetState(), token); !returning {
		if _, err := r.store.Dispatch(actions.Join(token, name)); err != nil {
			return r.fail(c, EventJoin, err)
		}
	}
	r.tokens[c.ID()] = token
	r.log.WithField("token", token).Info("player joined")
	return r.commit(ctx, c, EventJoin, func(s Snapshot) interface{} {
		return JoinReply{Token: token, Room: s}
	})
}
