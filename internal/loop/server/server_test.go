package server

import (
	"testing"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
)

// register adds a client and runs the pending registration work the tick
// loop would normally do.
func register(s *Server, username string) *ClientHandle {
	h := s.RegisterClient(username)
	s.processRegistrations()
	return h
}

func unregister(s *Server, h *ClientHandle) {
	s.UnregisterClient(h.ID)
	s.processRegistrations()
}

func drainEvents(h *ClientHandle) []ClientEvent {
	var events []ClientEvent
	for {
		select {
		case ev := <-h.EventsCh:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestFirstClientPlaysAgainstAI(t *testing.T) {
	s := NewServer()
	h := register(s, "alice")

	if h.Side != SideLeft {
		t.Errorf("expected side %v, got %v", SideLeft, h.Side)
	}
	if len(s.matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(s.matches))
	}
	m := h.match
	if !m.game.RightAI() {
		t.Error("expected right paddle AI enabled for a solo match")
	}
}

func TestSecondClientTakesOverRightPaddle(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")

	if h2.Side != SideRight {
		t.Errorf("expected side %v, got %v", SideRight, h2.Side)
	}
	if h1.match != h2.match {
		t.Fatal("expected both clients in the same match")
	}
	if len(s.matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(s.matches))
	}
	if h1.match.game.RightAI() {
		t.Error("expected right paddle AI disabled once an opponent joined")
	}

	ev1 := drainEvents(h1)
	if len(ev1) != 1 || ev1[0].Type != EventOpponentJoined || ev1[0].Username != "bob" {
		t.Errorf("expected opponent joined event for bob, got %v", ev1)
	}
	ev2 := drainEvents(h2)
	if len(ev2) != 1 || ev2[0].Type != EventOpponentJoined || ev2[0].Username != "alice" {
		t.Errorf("expected opponent joined event for alice, got %v", ev2)
	}
}

func TestOpponentLeaveHandsPaddleBackToAI(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")
	drainEvents(h1)

	unregister(s, h2)

	if len(s.matches) != 1 {
		t.Fatalf("expected match to survive, got %d matches", len(s.matches))
	}
	if !h1.match.game.RightAI() {
		t.Error("expected right paddle AI re-enabled after opponent left")
	}

	ev := drainEvents(h1)
	if len(ev) != 1 || ev[0].Type != EventOpponentLeft {
		t.Errorf("expected opponent left event, got %v", ev)
	}
}

func TestMatchTornDownWhenEmpty(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")

	unregister(s, h1)
	unregister(s, h2)

	if len(s.matches) != 0 {
		t.Errorf("expected no matches, got %d", len(s.matches))
	}
	if len(s.clients) != 0 {
		t.Errorf("expected no clients, got %d", len(s.clients))
	}
}

func TestNewcomerFillsVacatedLeftSeat(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")
	drainEvents(h2)

	unregister(s, h1)
	if !h2.match.game.LeftAI() {
		t.Fatal("expected left paddle AI enabled after the creator left")
	}
	drainEvents(h2)

	h3 := register(s, "carol")

	if h3.Side != SideLeft {
		t.Errorf("expected side %v, got %v", SideLeft, h3.Side)
	}
	if h3.match != h2.match {
		t.Fatal("expected the newcomer to join the existing match")
	}
	if len(s.matches) != 1 {
		t.Errorf("expected 1 match, got %d", len(s.matches))
	}
	if h3.match.game.LeftAI() {
		t.Error("expected left paddle AI disabled once the seat was refilled")
	}

	ev := drainEvents(h2)
	if len(ev) != 1 || ev[0].Type != EventOpponentJoined || ev[0].Username != "carol" {
		t.Errorf("expected opponent joined event for carol, got %v", ev)
	}
}

func TestSoleRightPlayerControlsToggles(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")
	m := h1.match

	unregister(s, h1)

	wasPhysical := m.game.IsPhysical()
	h2.input = input.Input{Physics: true}
	m.Update(0.001)

	if m.game.IsPhysical() == wasPhysical {
		t.Error("expected the remaining right player to flip the bounce model")
	}
}

func TestRightSeatHasNoTogglesWhileLeftOccupied(t *testing.T) {
	s := NewServer()
	h1 := register(s, "alice")
	h2 := register(s, "bob")
	m := h1.match

	wasPhysical := m.game.IsPhysical()
	h2.input = input.Input{Physics: true}
	m.Update(0.001)

	if m.game.IsPhysical() != wasPhysical {
		t.Error("expected toggles to stay with the left seat while it is occupied")
	}
}

func TestThirdClientStartsNewMatch(t *testing.T) {
	s := NewServer()
	register(s, "alice")
	register(s, "bob")
	h3 := register(s, "carol")

	if h3.Side != SideLeft {
		t.Errorf("expected side %v, got %v", SideLeft, h3.Side)
	}
	if len(s.matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(s.matches))
	}
}

func TestMatchWinFreezesUntilRestart(t *testing.T) {
	s := NewServer()
	h := register(s, "alice")
	m := h.match

	m.game.State().ScoreLeft = config.WinningScore
	m.Update(0.001)

	if m.winner != 1 {
		t.Fatalf("expected winner 1, got %d", m.winner)
	}
	snap := m.snapshot.Load()
	if snap.Winner != 1 {
		t.Errorf("expected snapshot winner 1, got %d", snap.Winner)
	}

	// Engine stays frozen until a player asks for a rematch
	m.Update(0.001)
	if got := m.game.State().ScoreLeft; got != config.WinningScore {
		t.Errorf("expected score to stay %d while frozen, got %d", config.WinningScore, got)
	}

	h.input = input.Input{Space: true}
	m.Update(0.001)

	if m.winner != 0 {
		t.Errorf("expected winner reset, got %d", m.winner)
	}
	if got := m.game.State().ScoreLeft; got != 0 {
		t.Errorf("expected score reset to 0, got %d", got)
	}
}

func TestSnapshotCopiesBalls(t *testing.T) {
	s := NewServer()
	h := register(s, "alice")
	m := h.match

	m.Update(0.001)
	snap := m.snapshot.Load()
	if len(snap.State.Balls) == 0 {
		t.Fatal("expected snapshot to carry balls")
	}

	before := snap.State.Balls[0].X
	m.Update(0.1)
	if got := snap.State.Balls[0].X; got != before {
		t.Errorf("expected old snapshot to stay frozen, ball moved from %v to %v", before, got)
	}
}
