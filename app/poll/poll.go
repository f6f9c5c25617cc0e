// Package poll runs timed majority votes among a fixed roster of players.
package poll

import (
	"context"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Poll is one vote. It resolves once the outcome is decided or every roster
// member has voted. A poll with no vote for the timeout resolves as no. The
// motion carries once yes votes reach half the roster rounded up, so a lone
// voter can carry it.
type Poll struct {
	ID      string
	Message string

	mu        sync.Mutex
	roster    map[string]bool
	votes     map[string]bool
	threshold int
	timeout   time.Duration
	timer     *time.Timer
	result    bool
	resolved  bool
	done      chan struct{}
	onResolve func(*Poll)
}

func newPoll(id, message string, roster []string, timeout time.Duration, onResolve func(*Poll)) *Poll {
	p := &Poll{
		ID:        id,
		Message:   message,
		roster:    make(map[string]bool, len(roster)),
		votes:     map[string]bool{},
		timeout:   timeout,
		done:      make(chan struct{}),
		onResolve: onResolve,
	}
	for _, token := range roster {
		p.roster[token] = true
	}
	p.threshold = (len(p.roster) + 1) / 2
	return p
}

func (p *Poll) start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resolved {
		return
	}
	if len(p.roster) == 0 {
		p.resolveLocked(true)
		return
	}
	p.timer = time.AfterFunc(p.timeout, p.expire)
}

func (p *Poll) Roster() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.roster))
	for token := range p.roster {
		out = append(out, token)
	}
	return out
}

// Vote records token's vote, replacing any earlier one. Votes from outside
// the roster and votes on a resolved poll are ignored.
func (p *Poll) Vote(token string, yes bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resolved || !p.roster[token] {
		return
	}
	p.votes[token] = yes
	// nil until start
	if p.timer != nil {
		p.timer.Reset(p.timeout)
	}

	agree := 0
	for _, v := range p.votes {
		if v {
			agree++
		}
	}
	if agree >= p.threshold || len(p.votes) == len(p.roster) {
		p.resolveLocked(agree >= p.threshold)
	}
}

func (p *Poll) expire() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolveLocked(false)
}

func (p *Poll) resolveLocked(result bool) {
	if p.resolved {
		return
	}
	p.resolved = true
	p.result = result
	if p.timer != nil {
		p.timer.Stop()
	}
	close(p.done)
	if p.onResolve != nil {
		p.onResolve(p)
	}
}

func (p *Poll) Done() <-chan struct{} {
	return p.done
}

// Result is only meaningful after Done is closed.
func (p *Poll) Result() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Wait blocks until the poll resolves or ctx ends; an ended ctx reads as no.
func (p *Poll) Wait(ctx context.Context) bool {
	select {
	case <-p.done:
		return p.Result()
	case <-ctx.Done():
		return false
	}
}

type Set struct {
	mu    sync.Mutex
	polls map[string]*Poll
	newID func() string
}

func NewSet() *Set {
	return &Set{
		polls: map[string]*Poll{},
		newID: func() string { return uuid.NewV4().String() },
	}
}

// Open starts a poll over roster. The poll leaves the set when it resolves.
func (s *Set) Open(message string, roster []string, timeout time.Duration) *Poll {
	p := newPoll(s.newID(), message, roster, timeout, s.remove)
	s.mu.Lock()
	s.polls[p.ID] = p
	s.mu.Unlock()
	p.start()
	return p
}

func (s *Set) Vote(id, token string, yes bool) {
	s.mu.Lock()
	p, ok := s.polls[id]
	s.mu.Unlock()
	if ok {
		p.Vote(token, yes)
	}
}

func (s *Set) Get(id string) (*Poll, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[id]
	return p, ok
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.polls)
}

func (s *Set) remove(p *Poll) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.polls, p.ID)
}
