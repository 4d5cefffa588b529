package simulation

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

type circle struct {
	x, y, r float64
	c       color.Color
}

// recorder is a Renderer that keeps every call for inspection.
type recorder struct {
	clears  []color.Color
	circles []circle
}

func (r *recorder) Clear(c color.Color) {
	r.clears = append(r.clears, c)
	r.circles = r.circles[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.circles = append(r.circles, circle{x: x, y: y, r: radius, c: c})
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewWorld(t *testing.T) {
	tests := []struct {
		name           string
		wPx, hPx       int
		nx, ny         int
		wantErr        bool
		wantSx, wantSy float64
	}{
		{"default window", 640, 480, 10, 10, false, 64, 48},
		{"square", 500, 500, 20, 25, false, 25, 20},
		{"zero width", 0, 480, 10, 10, true, 0, 0},
		{"negative height", 640, -1, 10, 10, true, 0, 0},
		{"empty grid", 640, 480, 0, 10, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWorld(tt.wPx, tt.hPx, tt.nx, tt.ny, &recorder{})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWorld) {
					t.Fatalf("expected ErrInvalidWorld, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sx, sy := w.Scale()
			if !floatEquals(sx, tt.wantSx) || !floatEquals(sy, tt.wantSy) {
				t.Errorf("Scale() = (%v, %v), want (%v, %v)", sx, sy, tt.wantSx, tt.wantSy)
			}
			nx, ny := w.Size()
			if nx != tt.nx || ny != tt.ny {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", nx, ny, tt.nx, tt.ny)
			}
		})
	}
}

func TestWorld_AddPoint(t *testing.T) {
	r := &recorder{}
	w, err := NewWorld(640, 480, 10, 10, r)
	if err != nil {
		t.Fatal(err)
	}

	w.Reset()
	w.AddPoint(5, 5)
	w.AddPoint(0, 10)

	if len(r.clears) != 1 || r.clears[0] != BackgroundColor {
		t.Fatalf("expected one clear to the background color, got %v", r.clears)
	}
	want := []circle{
		{x: 320, y: 240, r: PointRadius, c: BoidColor},
		{x: 0, y: 480, r: PointRadius, c: BoidColor},
	}
	if len(r.circles) != len(want) {
		t.Fatalf("expected %d circles, got %d", len(want), len(r.circles))
	}
	for i, c := range want {
		got := r.circles[i]
		if !floatEquals(got.x, c.x) || !floatEquals(got.y, c.y) || got.r != c.r || got.c != c.c {
			t.Errorf("circle %d = %+v, want %+v", i, got, c)
		}
	}
}

func TestWorld_ResetClearsFrame(t *testing.T) {
	r := &recorder{}
	w, _ := NewWorld(100, 100, 10, 10, r)

	w.AddPoint(1, 1)
	w.Reset()
	if len(r.circles) != 0 {
		t.Errorf("expected an empty frame after Reset, got %d circles", len(r.circles))
	}
}

func TestWorld_OutsidePointsStillPlotted(t *testing.T) {
	r := &recorder{}
	w, _ := NewWorld(100, 100, 10, 10, r)

	w.AddPoint(-1, 12)
	if len(r.circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(r.circles))
	}
	if got := r.circles[0]; !floatEquals(got.x, -10) || !floatEquals(got.y, 120) {
		t.Errorf("got (%v, %v), want (-10, 120)", got.x, got.y)
	}
}

func TestScreenRenderer_NilScreen(t *testing.T) {
	// no image bound: both calls are no-ops
	var r ScreenRenderer
	r.Clear(BackgroundColor)
	r.FillCircle(1, 1, PointRadius, BoidColor)
}
