package draw

import (
	"strings"
	"testing"
)

// pixelAt reads a sub-pixel directly; test-only backdoor into the
// flat pixel slice.
func pixelAt(c *Canvas, x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// unitCanvas returns a canvas with 1:1 logical-to-pixel mapping.
func unitCanvas(w, h int) *Canvas {
	return NewScaledCanvas(w, h, float64(w), float64(h*2))
}

func TestDrawLineVertical(t *testing.T) {
	c := unitCanvas(10, 10)
	c.DrawLine(Point{X: 4, Y: 2}, Point{X: 4, Y: 6})

	for y := 2; y <= 6; y++ {
		if !pixelAt(c, 4, y) {
			t.Errorf("expected pixel (4,%d) set", y)
		}
	}
	if pixelAt(c, 4, 1) || pixelAt(c, 4, 7) {
		t.Error("expected line to stop at its endpoints")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := unitCanvas(10, 10)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 5, Y: 5})

	for i := 0; i <= 5; i++ {
		if !pixelAt(c, i, i) {
			t.Errorf("expected pixel (%d,%d) set", i, i)
		}
	}
}

func TestFillRectCoversInterior(t *testing.T) {
	c := unitCanvas(10, 10)
	c.FillRect(2, 3, 4, 5)

	if !pixelAt(c, 3, 5) {
		t.Error("expected interior pixel set")
	}
	if pixelAt(c, 1, 5) || pixelAt(c, 7, 5) {
		t.Error("expected pixels outside the rect clear")
	}
}

func TestFillEllipseCenterAndOutside(t *testing.T) {
	c := unitCanvas(20, 10)
	c.FillEllipse(10, 10, 4, 6)

	if !pixelAt(c, 10, 10) {
		t.Error("expected ellipse center set")
	}
	if pixelAt(c, 18, 10) {
		t.Error("expected pixel beyond the horizontal radius clear")
	}
}

func TestRenderEmitsHalfBlocks(t *testing.T) {
	c := unitCanvas(4, 2)
	c.SetFloat(1, 0) // Top sub-pixel of row 0
	c.SetFloat(2, 3) // Bottom sub-pixel of row 1

	var out strings.Builder
	c.Render(&out)

	if !strings.ContainsRune(out.String(), BlockUpperHalf) {
		t.Error("expected an upper half-block in the render output")
	}
	if !strings.ContainsRune(out.String(), BlockLowerHalf) {
		t.Error("expected a lower half-block in the render output")
	}
}

func TestClearResetsPixels(t *testing.T) {
	c := unitCanvas(5, 5)
	c.FillRect(0, 0, 5, 10)
	c.Clear()

	if pixelAt(c, 2, 2) {
		t.Error("expected all pixels cleared")
	}
}
