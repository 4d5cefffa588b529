package ui

import (
	"math"
	"testing"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSlider_ValueAt(t *testing.T) {
	s := NewSlider(100, 0, 200, "Gain", 0, 2, 1)

	tests := []struct {
		name string
		mx   float64
		want float64
	}{
		{"left edge", 100, 0},
		{"middle", 200, 1},
		{"quarter", 150, 0.5},
		{"right edge", 300, 2},
		{"left of track", 50, 0},
		{"right of track", 400, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.valueAt(tt.mx); !floatEquals(got, tt.want) {
				t.Errorf("valueAt(%v) = %v, want %v", tt.mx, got, tt.want)
			}
		})
	}
}

func TestNewSlider_ClampsValue(t *testing.T) {
	if s := NewSlider(0, 0, 100, "Gain", 0, 1, 3); s.Value != 1 {
		t.Errorf("Value = %v, want 1", s.Value)
	}
	if s := NewSlider(0, 0, 100, "Gain", 0.5, 1, 0); s.Value != 0.5 {
		t.Errorf("Value = %v, want 0.5", s.Value)
	}
}

func TestSlider_Handle(t *testing.T) {
	s := NewSlider(0, 10, 100, "Gain", 0, 10, 5)

	s.handle(20, 15, false)
	if s.Value != 5 {
		t.Errorf("released button moved the slider to %v", s.Value)
	}
	s.handle(20, 15, true)
	if !floatEquals(s.Value, 2) {
		t.Errorf("Value = %v, want 2", s.Value)
	}
	s.handle(80, 50, true)
	if !floatEquals(s.Value, 2) {
		t.Errorf("press outside the track moved the slider to %v", s.Value)
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "Stats", false)
	var changes []bool
	c.OnChange = func(v bool) { changes = append(changes, v) }

	// held for three frames, released, pressed again
	c.handle(5, 5, true)
	c.handle(5, 5, true)
	c.handle(5, 5, true)
	c.handle(5, 5, false)
	c.handle(5, 5, true)

	if c.Value {
		t.Error("expected the checkbox to be off after two presses")
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("OnChange calls = %v, want [true false]", changes)
	}

	c.handle(50, 50, true)
	if c.Value {
		t.Error("press outside the box toggled it")
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(10, 10, 100, 24, "Respawn", func() { clicks++ })

	b.handle(20, 20, false)
	if !b.hover || clicks != 0 {
		t.Fatalf("hover=%t clicks=%d", b.hover, clicks)
	}
	b.handle(20, 20, true)
	b.handle(20, 20, true)
	b.handle(20, 20, false)
	b.handle(20, 20, true)
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}

	b.handle(500, 20, true)
	if b.hover || clicks != 2 {
		t.Errorf("press away from the button: hover=%t clicks=%d", b.hover, clicks)
	}
}

func TestUIPanel_Layout(t *testing.T) {
	p := NewUIPanel(10, 10, 220, 400, "Controls")

	p.AddSection("Gains")
	s1 := p.AddSlider("Cohesion", 0, 1, 0.1)
	s2 := p.AddSlider("Alignment", 0, 2, 0.5)
	p.EndSection()
	p.AddSection("Display")
	cb := p.AddCheckbox("Stats", true)
	btn := p.AddButton("Respawn", nil)
	p.EndSection()

	if len(p.Widgets) != 4 {
		t.Fatalf("expected 4 widgets, got %d", len(p.Widgets))
	}
	// title 30, section 25, caption 15
	if !floatEquals(s1.Y, 80) {
		t.Errorf("first slider at y=%v, want 80", s1.Y)
	}
	if !floatEquals(s2.Y-s1.Y, s1.H+25) {
		t.Errorf("sliders %v apart, want %v", s2.Y-s1.Y, s1.H+25)
	}
	if !(cb.Y > s2.Y+s2.H && btn.Y > cb.Y+cb.Size) {
		t.Errorf("widgets overlap: slider=%v checkbox=%v button=%v", s2.Y, cb.Y, btn.Y)
	}
	if !floatEquals(s1.X, 20) || !floatEquals(s1.W, 200) || !floatEquals(btn.Width, 200) {
		t.Errorf("unexpected horizontal layout x=%v w=%v button=%v", s1.X, s1.W, btn.Width)
	}

	// sections cover the widgets added after them
	if got := p.sections[0]; got.StartIndex != 0 || got.EndIndex != 2 {
		t.Errorf("first section = %+v", got)
	}
	if got := p.sections[1]; got.StartIndex != 2 || got.EndIndex != 4 {
		t.Errorf("second section = %+v", got)
	}
}

func TestUIPanel_Scroll(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 100, "Controls")
	p.AddSection("Gains")
	for range 5 {
		p.AddSlider("Gain", 0, 1, 0.5)
	}

	p.scroll(10)
	if p.ScrollOffset != 0 {
		t.Errorf("scrolled above the top: %v", p.ScrollOffset)
	}
	p.scroll(-1000)
	want := p.contentHeight() - p.Height + 2*margin
	if !floatEquals(p.ScrollOffset, want) {
		t.Errorf("ScrollOffset = %v, want %v", p.ScrollOffset, want)
	}
}

func TestSliderWrapper_Caption(t *testing.T) {
	w := &SliderWrapper{NewSlider(0, 0, 100, "Cohesion", 0, 1, 0.1)}
	if got := w.Caption(); got != "Cohesion: 0.100" {
		t.Errorf("Caption() = %q", got)
	}
}
