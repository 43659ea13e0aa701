package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// updateStartScreen handles the title screen.
func updateStartScreen(state *State) {
	if state.Input.Space || state.Input.Enter {
		startGame(state)
	}
}

// updatePaused handles the pause screen.
func updatePaused(state *State) {
	if pressed(state.Input.Escape, state.PrevInput.Escape) ||
		pressed(state.Input.Space, state.PrevInput.Space) {
		state.Screen = ScreenPlaying
	}
}

// updateGameOver handles the game over screen.
func updateGameOver(state *State) {
	if state.Input.Space || state.Input.Enter {
		startGame(state)
	}
}

// startGame resets the engine and enters gameplay.
func startGame(state *State) {
	input.ResetKeyInput(state.InputStream)
	state.Game.Reset()
	state.Winner = 0
	state.Screen = ScreenPlaying
}

// drawUI draws the overlay for the current screen.
func drawUI(state *State, w io.Writer, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.Screen {
	case ScreenStart:
		drawStartScreen(w, centerX, centerY)
	case ScreenPlaying:
		drawPlayingHUD(state, w, termWidth)
	case ScreenPaused:
		drawPlayingHUD(state, w, termWidth)
		drawCentered(w, centerX, centerY, "PAUSED - SPACE to resume")
	case ScreenGameOver:
		drawGameOverScreen(state, w, centerX, centerY)
	}
}

// drawCentered writes a line centered on the given terminal position.
func drawCentered(w io.Writer, centerX, y int, s string) {
	draw.MoveCursor(w, centerX-len(s)/2, y)
	fmt.Fprint(w, s)
}

// drawStartScreen draws the title screen.
func drawStartScreen(w io.Writer, centerX, centerY int) {
	drawCentered(w, centerX, centerY-4, "P O N G")
	drawCentered(w, centerX, centerY-1, "Press SPACE to Start")
	drawCentered(w, centerX, centerY+2, "W/S left paddle, I/K or Arrows right paddle, Q to quit")
	drawCentered(w, centerX, centerY+3, "1-5 select mode, A/O toggle paddle AI")
	drawCentered(w, centerX, centerY+4, "P physics model, V speed mode, G gravity well")
}

// drawPlayingHUD draws the in-game HUD (score, mode, options).
func drawPlayingHUD(state *State, w io.Writer, termWidth int) {
	st := state.Game.State()

	score := fmt.Sprintf("%d : %d", st.ScoreLeft, st.ScoreRight)
	draw.MoveCursor(w, termWidth/2-len(score)/2, 1)
	fmt.Fprint(w, score)

	draw.MoveCursor(w, 2, 1)
	fmt.Fprint(w, st.Mode.String())

	opts := ""
	if !state.Game.IsPhysical() {
		opts += " [arcade]"
	}
	if state.Game.IsSpeedMode() {
		opts += " [speed]"
	}
	if state.Game.Gravity() {
		opts += " [gravity]"
	}
	if opts != "" {
		draw.MoveCursor(w, termWidth-len(opts)-1, 1)
		fmt.Fprint(w, opts)
	}
}

// drawGameOverScreen draws the end-of-match screen.
func drawGameOverScreen(state *State, w io.Writer, centerX, centerY int) {
	winner := "LEFT PLAYER WINS"
	if state.Winner > 0 {
		winner = "RIGHT PLAYER WINS"
	}
	drawCentered(w, centerX, centerY-2, winner)

	st := state.Game.State()
	drawCentered(w, centerX, centerY, fmt.Sprintf("%d : %d", st.ScoreLeft, st.ScoreRight))
	drawCentered(w, centerX, centerY+2, "Press SPACE to play again")
}
