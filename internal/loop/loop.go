// Package loop provides the single-session game loop and screens.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
)

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// The reader must be in raw mode; Run blocks until the player quits.
func Run(r *bufio.Reader, w io.Writer) error {
	state := NewState()
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	// Canvas maps the fixed arena resolution onto the terminal
	termWidth, termHeight, _ := draw.TerminalSizeRaw()
	canvas := draw.NewScaledCanvas(termWidth, termHeight, config.ViewWidth, config.ViewHeight)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if err := updateScreenSize(canvas); err != nil {
			return err
		}

		switch state.Screen {
		case ScreenStart:
			updateStartScreen(state)
		case ScreenPlaying:
			updatePlaying(state)
		case ScreenPaused:
			updatePaused(state)
		case ScreenGameOver:
			updateGameOver(state)
		}

		// ===== DRAW PHASE =====
		drawFrame(state, w, canvas)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads pending input and keeps the previous frame's state
// for edge detection.
func processInput(state *State) {
	state.PrevInput = state.Input
	state.Input = input.ReadInput(state.InputStream)

	if state.Input.Quit {
		state.Running = false
	}
}

// updateScreenSize checks for terminal resize and updates canvas scaling.
func updateScreenSize(canvas *draw.Canvas) error {
	termWidth, termHeight, err := draw.TerminalSizeRaw()
	if err != nil {
		return err
	}
	canvas.Resize(termWidth, termHeight)
	return nil
}

// drawFrame clears the screen and draws the arena plus UI overlay.
func drawFrame(state *State, w io.Writer, canvas *draw.Canvas) {
	draw.ClearScreen(w)
	canvas.Clear()

	if state.Screen != ScreenStart {
		RenderArena(state.Game.State(), canvas)
	}
	canvas.Render(w)

	drawUI(state, w, canvas)
}
