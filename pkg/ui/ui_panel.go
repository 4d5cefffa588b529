package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
	margin        = 10.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	Caption() string
	moveTo(y float64)
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return s.H + 25 }
func (s *SliderWrapper) Caption() string    { return fmt.Sprintf("%s: %.3f", s.Label, s.Value) }
func (s *SliderWrapper) moveTo(y float64)   { s.Y = y }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return c.Size + 20 }
func (c *CheckboxWrapper) Caption() string    { return c.Label }
func (c *CheckboxWrapper) moveTo(y float64)   { c.Y = y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 { return b.Height + 10 }
func (b *ButtonWrapper) Caption() string    { return "" }
func (b *ButtonWrapper) moveTo(y float64)   { b.Y = y }

// PanelSection groups consecutive widgets under a title.
type PanelSection struct {
	Title      string
	StartIndex int // first widget of the section
	EndIndex   int // one past the last widget
}

// UIPanel stacks widgets vertically in sections and scrolls with the wheel.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []UIWidget
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// NewUIPanel creates a new UI panel
func NewUIPanel(x, y, width, height float64, title string) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a new section; widgets added next belong to it.
func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	y := p.Y + p.contentHeight() + labelHeight
	slider := NewSlider(p.X+margin, y, p.Width-2*margin, label, min, max, value)
	p.add(&SliderWrapper{slider})
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	y := p.Y + p.contentHeight() + labelHeight
	checkbox := NewCheckbox(p.X+margin, y, label, value)
	p.add(&CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a full-width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	y := p.Y + p.contentHeight()
	button := NewButton(p.X+margin, y, p.Width-2*margin, 24, label, onClick)
	p.add(&ButtonWrapper{button})
	return button
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// contentHeight is the height of everything added so far, title included.
func (p *UIPanel) contentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

// Update handles scrolling and input for all widgets
func (p *UIPanel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scroll(dy * 20)
	}
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *UIPanel) scroll(by float64) {
	p.ScrollOffset -= by
	maxScroll := p.contentHeight() - p.Height + 2*margin
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
}

// Draw renders the panel and the widgets that fall inside it
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+5))

	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		if p.visible(y) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+margin), int(y+3))
		}
		y += sectionHeight

		for i := s.StartIndex; i < s.EndIndex && i < len(p.Widgets); i++ {
			w := p.Widgets[i]
			if p.visible(y) {
				top := y
				if c := w.Caption(); c != "" {
					ebitenutil.DebugPrintAt(screen, c, int(p.X+margin), int(y))
					top += labelHeight
				}
				w.moveTo(top)
				w.Draw(screen)
			}
			y += w.GetHeight()
		}
	}
}

func (p *UIPanel) visible(y float64) bool {
	return y >= p.Y && y <= p.Y+p.Height-sectionHeight
}

// hit reports whether (px, py) lies inside the rectangle at (x, y) of size w by h.
func hit(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
