package poll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolved(p *Poll) bool {
	select {
	case <-p.Done():
		return true
	default:
		return false
	}
}

func TestMajorityResolvesEarly(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b", "c", "d"}, time.Minute)

	p.Vote("a", true)
	assert.False(t, resolved(p))
	p.Vote("b", true)
	require.True(t, resolved(p))
	assert.True(t, p.Result())
	assert.Equal(t, 0, s.Len(), "a resolved poll leaves the set")
}

func TestEveryoneVotedResolves(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b", "c"}, time.Minute)

	p.Vote("a", false)
	p.Vote("b", true)
	assert.False(t, resolved(p))
	p.Vote("c", false)
	require.True(t, resolved(p))
	assert.False(t, p.Result())
}

func TestRevoteOverwrites(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b", "c"}, time.Minute)

	p.Vote("a", false)
	p.Vote("a", true)
	assert.False(t, resolved(p))
	p.Vote("b", true)
	require.True(t, resolved(p))
	assert.True(t, p.Result())
}

func TestOutsidersAndLateVotesIgnored(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b"}, time.Minute)

	p.Vote("stranger", true)
	assert.False(t, resolved(p))

	s.Vote(p.ID, "a", true)
	require.True(t, resolved(p))

	s.Vote(p.ID, "b", false)
	s.Vote("nope", "b", false)
	p.Vote("b", false)
	assert.True(t, p.Result())
}

func TestTimeoutResolvesNo(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b", "c"}, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.False(t, p.Wait(ctx))
	assert.True(t, resolved(p))
	assert.Equal(t, 0, s.Len())
}

func TestVoteResetsTimer(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a", "b", "c", "d", "e"}, 150*time.Millisecond)

	for _, token := range []string{"a", "b"} {
		time.Sleep(100 * time.Millisecond)
		p.Vote(token, false)
		assert.False(t, resolved(p), "a vote keeps the poll alive")
	}
	assert.Eventually(t, func() bool { return resolved(p) }, time.Second, 5*time.Millisecond)
	assert.False(t, p.Result())
}

func TestEmptyRosterAdmits(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", nil, time.Minute)
	require.True(t, resolved(p))
	assert.True(t, p.Result())
	assert.Equal(t, 0, s.Len())
}

func TestWaitHonoursContext(t *testing.T) {
	s := NewSet()
	p := s.Open("let Ann in?", []string{"a"}, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, p.Wait(ctx))
	assert.Equal(t, 1, s.Len())
}

func TestSingleVoterCarries(t *testing.T) {
	p := NewSet().Open("let Ann in?", []string{"a"}, time.Minute)
	p.Vote("a", true)
	require.True(t, resolved(p))
	assert.True(t, p.Result())
}

func TestVoteBeforeStart(t *testing.T) {
	p := newPoll("id", "let Ann in?", []string{"a", "b"}, time.Minute, nil)
	assert.NotPanics(t, func() { p.Vote("a", true) })
	require.True(t, resolved(p))

	p.start()
	assert.Nil(t, p.timer, "a settled poll never arms its timer")
	assert.True(t, p.Result())
}
