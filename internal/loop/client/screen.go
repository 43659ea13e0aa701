package client

import (
	"fmt"
	"time"

	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	cw := c.chunkWriter
	cw.WriteString("\033[H\033[2J")

	c.canvas.Clear()

	snapshot := c.server.GetSnapshot(c.handle.ID)

	if c.state.GameState == GameStatePlaying && snapshot != nil {
		loop.RenderArena(&snapshot.State, c.canvas)
	}

	c.canvas.Render(cw)

	// Border when the terminal exceeds the max render resolution
	c.canvas.RenderBorder(cw)

	c.drawUI(snapshot)

	return cw.Flush()
}

// drawUI draws the overlay for the current screen.
func (c *Client) drawUI(snapshot *server.MatchSnapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___  ___  _  _  ___  `,
		` | _ \/ _ \| \| |/ __| `,
		` |  _/ (_) | .\ | (_ | `,
		` |_|  \___/|_|\_|\___| `,
		`                       `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := c.chunkWriter
	titleStartY := centerY - 8
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	subtitle := "~ Multiplayer Pong over SSH ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W / S . . . . . Move paddle",
		"1-5 . . . . . . Game mode",
		"P . . . . . . . Bounce model",
		"V . . . . . . . Speed mode",
		"G . . . . . . . Gravity",
		"Q . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Play  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// drawPlayingHUD draws the in-game overlay: score, seat names, and the
// match-over banner once someone reaches the winning score.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *server.MatchSnapshot) {
	if snapshot == nil {
		return
	}
	cw := c.chunkWriter

	score := fmt.Sprintf("%d : %d", snapshot.State.ScoreLeft, snapshot.State.ScoreRight)
	cw.WriteAt(termWidth/2-len(score)/2, 1, score)

	leftName := snapshot.LeftName
	if leftName == "" {
		leftName = "AI"
	}
	rightName := snapshot.RightName
	if rightName == "" {
		rightName = "AI"
	}
	cw.WriteAt(2, 1, leftName)
	cw.WriteAt(termWidth-len(rightName)-1, 1, rightName)

	mode := snapshot.State.Mode.String()
	cw.WriteAt(2, termHeight, mode)

	if snapshot.Winner != 0 {
		c.drawMatchOver(termWidth/2, termHeight/2, snapshot)
	}
}

// drawMatchOver draws the end-of-match banner with a restart prompt.
func (c *Client) drawMatchOver(centerX, centerY int, snapshot *server.MatchSnapshot) {
	cw := c.chunkWriter

	youWon := (snapshot.Winner > 0) == (c.handle.Side == server.SideLeft)
	title := "YOU LOSE"
	if youWon {
		title = "YOU WIN"
	}
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	score := fmt.Sprintf("Final score  %d : %d", snapshot.State.ScoreLeft, snapshot.State.ScoreRight)
	cw.WriteAt(centerX-len(score)/2, centerY, score)

	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE for a rematch  <<"
		cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	cw := c.chunkWriter
	title := "SERVER SHUTTING DOWN"
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	msg1 := "The server is restarting for maintenance."
	cw.WriteAt(centerX-len(msg1)/2, centerY-1, msg1)

	msg2 := "Please reconnect in a moment."
	cw.WriteAt(centerX-len(msg2)/2, centerY, msg2)

	remaining := int(c.state.shutdownTimer) + 1
	countdown := fmt.Sprintf("Disconnecting in %d seconds...", remaining)
	cw.WriteAt(centerX-len(countdown)/2, centerY+2, countdown)

	hint := "Press Q to disconnect now"
	cw.WriteAt(centerX-len(hint)/2, centerY+4, hint)
}
