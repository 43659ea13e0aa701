// Package input reads keyboard input from a raw-mode terminal stream.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	LeftUp    bool // w - left paddle up
	LeftDown  bool // s - left paddle down
	RightUp   bool // up arrow - right paddle up
	RightDown bool // down arrow - right paddle down
	Space     bool
	Enter     bool
	Escape    bool

	// One-shot toggles; the loop edge-detects these.
	Physics bool // p - bounce model
	Speed   bool // v - speed mode
	LeftAI  bool // a - left paddle AI
	RightAI bool // o - right paddle AI
	Gravity bool // g - black hole

	Number  int // Mode selection 1-5, -1 when none pressed
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	leftUp    time.Time
	leftDown  time.Time
	rightUp   time.Time
	rightDown time.Time
	space     time.Time
	enter     time.Time
	escape    time.Time
	physics   time.Time
	speed     time.Time
	leftAI    time.Time
	rightAI   time.Time
	gravity   time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool // Reader hit EOF and the channel is closed
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets all held keys, e.g. when switching screens so a
// held key does not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{numberVal: -1}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
// A stream whose reader hit EOF reports Quit so callers wind the session down.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Parse the collected bytes and update key state timestamps
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.rightUp = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.rightDown = now
				i += 2
				continue
			}
		}

		// Single byte handling - update key state
		applyByteToState(&s.state, b, now)
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	input := Input{
		Quit:      s.closed || now.Sub(s.state.quit) < keyHoldDuration,
		LeftUp:    now.Sub(s.state.leftUp) < keyHoldDuration,
		LeftDown:  now.Sub(s.state.leftDown) < keyHoldDuration,
		RightUp:   now.Sub(s.state.rightUp) < keyHoldDuration,
		RightDown: now.Sub(s.state.rightDown) < keyHoldDuration,
		Space:     now.Sub(s.state.space) < keyHoldDuration,
		Enter:     now.Sub(s.state.enter) < keyHoldDuration,
		Escape:    now.Sub(s.state.escape) < keyHoldDuration,
		Physics:   now.Sub(s.state.physics) < keyHoldDuration,
		Speed:     now.Sub(s.state.speed) < keyHoldDuration,
		LeftAI:    now.Sub(s.state.leftAI) < keyHoldDuration,
		RightAI:   now.Sub(s.state.rightAI) < keyHoldDuration,
		Gravity:   now.Sub(s.state.gravity) < keyHoldDuration,
		Number:    -1,
		Pressed:   buf,
	}

	// Number is only set if recently pressed
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'w', 'W':
		state.leftUp = now
	case 's', 'S':
		state.leftDown = now
	case 'i', 'I':
		state.rightUp = now
	case 'k', 'K':
		state.rightDown = now
	case 'p', 'P':
		state.physics = now
	case 'v', 'V':
		state.speed = now
	case 'a', 'A':
		state.leftAI = now
	case 'o', 'O':
		state.rightAI = now
	case 'g', 'G':
		state.gravity = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '1', '2', '3', '4', '5':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
