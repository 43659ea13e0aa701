package loop

import (
	"github.com/tomz197/pong/internal/core"
	"github.com/tomz197/pong/internal/loop/config"
)

// updatePlaying handles active gameplay: apply paddle input and toggle
// keys, advance the engine, and watch for the winning score.
func updatePlaying(state *State) {
	g := state.Game
	dt := state.Delta.Seconds()

	if pressed(state.Input.Escape, state.PrevInput.Escape) {
		state.Screen = ScreenPaused
		return
	}

	applyToggles(state)
	applyPaddleInput(state, dt)

	g.Update(dt)

	st := g.State()
	if st.ScoreLeft >= config.WinningScore || st.ScoreRight >= config.WinningScore {
		if st.ScoreLeft > st.ScoreRight {
			state.Winner = -1
		} else {
			state.Winner = 1
		}
		state.Screen = ScreenGameOver
	}
}

// applyPaddleInput moves the human-controlled paddles. AI-owned paddles
// ignore the keys.
func applyPaddleInput(state *State, dt float64) {
	g := state.Game
	step := config.PaddleSpeed * dt

	if !g.LeftAI() {
		if state.Input.LeftUp {
			g.MoveLeftBy(-step)
		}
		if state.Input.LeftDown {
			g.MoveLeftBy(step)
		}
	}
	if !g.RightAI() {
		if state.Input.RightUp {
			g.MoveRightBy(-step)
		}
		if state.Input.RightDown {
			g.MoveRightBy(step)
		}
	}
}

// applyToggles edge-detects the option keys so a held key flips a
// setting once, not once per frame.
func applyToggles(state *State) {
	g := state.Game
	in, prev := state.Input, state.PrevInput

	if pressed(in.Physics, prev.Physics) {
		g.SetPhysicalMode(!g.IsPhysical())
	}
	if pressed(in.Speed, prev.Speed) {
		g.SetSpeedMode(!g.IsSpeedMode())
	}
	if pressed(in.LeftAI, prev.LeftAI) {
		g.EnableLeftAI(!g.LeftAI())
	}
	if pressed(in.RightAI, prev.RightAI) {
		g.EnableRightAI(!g.RightAI())
	}
	if pressed(in.Gravity, prev.Gravity) {
		g.SetGravity(!g.Gravity())
	}

	if in.Number >= 1 && in.Number <= 5 && prev.Number != in.Number {
		g.SetMode(core.Mode(in.Number - 1))
	}
}
