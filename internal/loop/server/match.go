package server

import (
	"sync/atomic"

	"github.com/tomz197/pong/internal/core"
	"github.com/tomz197/pong/internal/loop/config"
)

// Match is a single 1v1 game. The creator starts in the left seat; any
// seat without a client, including one vacated mid-match, is AI-driven
// until a new client fills it.
type Match struct {
	ID    int
	game  *core.Game
	left  *ClientHandle
	right *ClientHandle

	// Winner is 0 while the match runs, +1 when left wins, -1 when
	// right wins. The engine is frozen until a player restarts.
	winner int

	snapshot atomic.Pointer[MatchSnapshot]
}

// MatchSnapshot is an immutable copy of a match's state, safe to read
// from client goroutines while the server keeps ticking.
type MatchSnapshot struct {
	State     core.State
	LeftName  string
	RightName string // Empty while the right paddle is AI-driven
	Winner    int
}

// NewMatch creates a match with the given creator in the left seat.
func NewMatch(id int, creator *ClientHandle) *Match {
	g := core.NewGame()
	g.EnableRightAI(true)

	m := &Match{
		ID:   id,
		game: g,
		left: creator,
	}
	m.publishSnapshot()
	return m
}

// Update applies the seated clients' inputs, advances the engine by dt
// seconds, and publishes a fresh snapshot.
func (m *Match) Update(dt float64) {
	if m.winner != 0 {
		if wantsRestart(m.left) || wantsRestart(m.right) {
			m.game.Reset()
			m.winner = 0
		}
		m.storePrevInputs()
		m.publishSnapshot()
		return
	}

	m.applyInput(m.left, dt)
	m.applyInput(m.right, dt)
	m.game.Update(dt)

	st := m.game.State()
	if st.ScoreLeft >= config.WinningScore {
		m.winner = 1
	} else if st.ScoreRight >= config.WinningScore {
		m.winner = -1
	}

	m.storePrevInputs()
	m.publishSnapshot()
}

// applyInput moves the client's paddle and, for the toggle owner,
// applies game option toggles.
func (m *Match) applyInput(handle *ClientHandle, dt float64) {
	if handle == nil {
		return
	}

	step := config.PaddleSpeed * dt
	switch handle.Side {
	case SideLeft:
		if handle.input.LeftUp {
			m.game.MoveLeftBy(-step)
		}
		if handle.input.LeftDown {
			m.game.MoveLeftBy(step)
		}
	case SideRight:
		if handle.input.RightUp {
			m.game.MoveRightBy(-step)
		}
		if handle.input.RightDown {
			m.game.MoveRightBy(step)
		}
	}

	if m.togglesOwner() == handle {
		m.applyToggles(handle)
	}
}

// togglesOwner is the one seat allowed to flip game options, so the two
// seats cannot fight over them: the left seat when occupied, otherwise
// the remaining right player.
func (m *Match) togglesOwner() *ClientHandle {
	if m.left != nil {
		return m.left
	}
	return m.right
}

// applyToggles flips game options on key press edges.
func (m *Match) applyToggles(handle *ClientHandle) {
	now, prev := handle.input, handle.prevInput

	if now.Physics && !prev.Physics {
		m.game.SetPhysicalMode(!m.game.IsPhysical())
	}
	if now.Speed && !prev.Speed {
		m.game.SetSpeedMode(!m.game.IsSpeedMode())
	}
	if now.Gravity && !prev.Gravity {
		m.game.SetGravity(!m.game.Gravity())
	}
	if now.Number > 0 && now.Number != prev.Number {
		m.game.SetMode(core.Mode(now.Number - 1))
	}
}

// storePrevInputs records this tick's inputs for edge detection.
func (m *Match) storePrevInputs() {
	if m.left != nil {
		m.left.prevInput = m.left.input
	}
	if m.right != nil {
		m.right.prevInput = m.right.input
	}
}

func wantsRestart(handle *ClientHandle) bool {
	if handle == nil {
		return false
	}
	now, prev := handle.input, handle.prevInput
	return (now.Space && !prev.Space) || (now.Enter && !prev.Enter)
}

// publishSnapshot deep-copies the match state for lock-free reads.
func (m *Match) publishSnapshot() {
	st := m.game.State()

	snap := &MatchSnapshot{
		State:  *st,
		Winner: m.winner,
	}
	snap.State.Balls = append([]core.Ball(nil), st.Balls...)
	snap.State.Obstacles = append([]core.Obstacle(nil), st.Obstacles...)
	snap.State.BlackHoles = append([]core.BlackHole(nil), st.BlackHoles...)

	if m.left != nil {
		snap.LeftName = m.left.Username
	}
	if m.right != nil {
		snap.RightName = m.right.Username
	}

	m.snapshot.Store(snap)
}
