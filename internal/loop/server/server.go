// Package server runs the shared match server for multiplayer games:
// it pairs clients into 1v1 matches, each owning one engine, and
// publishes per-match snapshots for clients to render.
package server

import (
	"context"
	"sync"
	"time"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the match
// server. Decouples the Client from the concrete Server implementation.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	SendInput(clientID int, in input.Input)
	GetSnapshot(clientID int) *MatchSnapshot
}

// Server manages all running matches and processes inputs from all clients.
type Server struct {
	mu           sync.RWMutex
	matches      map[int]*Match
	clients      map[int]*ClientHandle
	nextClientID int
	nextMatchID  int
	inputChan    chan ClientInput
	registerCh   chan *ClientHandle
	unregisterCh chan int
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// Side identifies which paddle a client drives.
type Side int

const (
	SideLeft  Side = iota // Match creator
	SideRight             // Joined opponent
)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string
	Side     Side
	EventsCh chan ClientEvent // Events sent to client (join, leave, shutdown)

	match     *Match
	input     input.Input
	prevInput input.Input
}

// ClientInput represents input from a specific client.
type ClientInput struct {
	ClientID int
	Input    input.Input
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // Opponent name for join events
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventOpponentJoined ClientEventType = iota
	EventOpponentLeft
	EventServerShutdown
)

// NewServer creates a new match server.
func NewServer() *Server {
	return &Server{
		matches:      make(map[int]*Match),
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		nextMatchID:  1,
		inputChan:    make(chan ClientInput, 256),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
	}
}

// Run starts the server loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		s.processRegistrations()
		s.collectInputs()
		s.updateMatches(delta.Seconds())

		elapsed := time.Since(frameStart)
		if elapsed < config.ServerTickTime {
			time.Sleep(config.ServerTickTime - elapsed)
		}
	}
}

// Shutdown gracefully shuts down the server by notifying all connected
// clients and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the server context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.mu.RLock()
			remaining := len(s.clients)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client and returns its handle. The
// client is attached to a match during the next tick.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// SendInput sends input from a client to the server.
func (s *Server) SendInput(clientID int, in input.Input) {
	select {
	case s.inputChan <- ClientInput{ClientID: clientID, Input: in}:
	default:
		// Input channel full, drop input
	}
}

// GetSnapshot returns the latest snapshot of the client's match, or nil
// if the client is not in a match yet.
func (s *Server) GetSnapshot(clientID int) *MatchSnapshot {
	s.mu.RLock()
	handle, ok := s.clients[clientID]
	s.mu.RUnlock()
	if !ok || handle.match == nil {
		return nil
	}
	return handle.match.snapshot.Load()
}

// processRegistrations handles pending client registrations and
// departures, placing newcomers into matches.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.placeClientLocked(handle)
			s.mu.Unlock()
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				s.leaveMatchLocked(handle)
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// placeClientLocked joins the client to an open match or creates a new
// one. Must be called with the lock held.
func (s *Server) placeClientLocked(handle *ClientHandle) {
	// Join the first match with an empty seat. A left seat can be empty
	// too, when the match creator left while an opponent stayed on.
	for _, m := range s.matches {
		var other *ClientHandle
		switch {
		case m.right == nil:
			m.right = handle
			handle.Side = SideRight
			m.game.EnableRightAI(false)
			other = m.left
		case m.left == nil:
			m.left = handle
			handle.Side = SideLeft
			m.game.EnableLeftAI(false)
			other = m.right
		default:
			continue
		}
		handle.match = m

		select {
		case other.EventsCh <- ClientEvent{Type: EventOpponentJoined, Username: handle.Username}:
		default:
		}
		select {
		case handle.EventsCh <- ClientEvent{Type: EventOpponentJoined, Username: other.Username}:
		default:
		}
		return
	}

	// No open seat: create a match vs the right-paddle AI
	m := NewMatch(s.nextMatchID, handle)
	s.nextMatchID++
	s.matches[m.ID] = m
	handle.match = m
	handle.Side = SideLeft
}

// leaveMatchLocked detaches a client from its match, handing its paddle
// back to the AI or tearing the match down when empty.
func (s *Server) leaveMatchLocked(handle *ClientHandle) {
	m := handle.match
	if m == nil {
		return
	}
	handle.match = nil

	var remaining *ClientHandle
	switch handle {
	case m.left:
		m.left = nil
		remaining = m.right
	case m.right:
		m.right = nil
		remaining = m.left
		m.game.EnableRightAI(true)
	}

	if remaining == nil {
		delete(s.matches, m.ID)
		return
	}

	// A solo right-side player keeps the match; the left paddle goes to AI.
	if m.left == nil {
		m.game.EnableLeftAI(true)
	}

	select {
	case remaining.EventsCh <- ClientEvent{Type: EventOpponentLeft}:
	default:
	}
}

// collectInputs gathers all pending inputs from clients.
func (s *Server) collectInputs() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case ci := <-s.inputChan:
			if handle, ok := s.clients[ci.ClientID]; ok {
				handle.input = ci.Input
			}
		default:
			return
		}
	}
}

// updateMatches advances every match by one tick and publishes fresh
// snapshots.
func (s *Server) updateMatches(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.matches {
		m.Update(dt)
	}
}
