package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

// Game drives the flock: ebiten calls Update once per tick and Draw once per frame.
type Game struct {
	cfg    *Config
	logger golog.Logger
	rng    *rand.Rand
	seed   uint64

	flock  *behavior.Flock
	params behavior.TickParams
	world  *World
	screen *ScreenRenderer
	timer  *FrameTimer

	paused       bool
	stepOnce     bool
	showControls bool
	keys         []ebiten.Key

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetBoundary   *ui.Slider
	widgetCohesion   *ui.Slider
	widgetAlignment  *ui.Slider
	widgetSeparation *ui.Slider
	widgetHeading    *ui.Checkbox
	widgetStats      *ui.Checkbox

	// Timing instrumentation
	ticks              int
	ticksSinceLog      int
	lastLogTime        time.Time
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame builds the flock, the world and the controls described by cfg.
func NewGame(cfg *Config, logger golog.Logger) (*Game, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	flock, err := behavior.NewFlock(rng, cfg.NumAgents, cfg.MaxVelocity, cfg.GridWidth, cfg.GridHeight, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create flock: %w", err)
	}

	screen := &ScreenRenderer{}
	world, err := NewWorld(cfg.WindowWidth, cfg.WindowHeight, cfg.GridWidth, cfg.GridHeight, screen)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		logger:       logger,
		rng:          rng,
		seed:         seed,
		flock:        flock,
		params:       cfg.TickParams(),
		world:        world,
		screen:       screen,
		timer:        NewFrameTimer(nil),
		showControls: cfg.ShowControls,
	}
	g.buildPanel()

	logger.Infof("Flock of %d boids on a %dx%d grid, seed %d, field of view %s",
		flock.Len(), cfg.GridWidth, cfg.GridHeight, seed, rules.View)
	return g, nil
}

func (g *Game) buildPanel() {
	gains := g.flock.Rules.Gains
	g.panel = ui.NewUIPanel(10, 10, 220, float64(g.cfg.WindowHeight)-20, "Controls (Tab)")

	g.panel.AddSection("Gains")
	g.widgetBoundary = g.panel.AddSlider("Boundary", 0, math.Max(5, gains.Boundary), gains.Boundary)
	g.widgetCohesion = g.panel.AddSlider("Cohesion", 0, math.Max(1, gains.Cohesion), gains.Cohesion)
	g.widgetAlignment = g.panel.AddSlider("Alignment", 0, math.Max(2, gains.Alignment), gains.Alignment)
	g.widgetSeparation = g.panel.AddSlider("Separation", 0, math.Max(5, gains.Separation), gains.Separation)
	g.panel.EndSection()

	g.panel.AddSection("Display")
	g.widgetHeading = g.panel.AddCheckbox("Heading field of view", g.flock.Rules.View == behavior.ViewFromHeading)
	g.widgetHeading.OnChange = func(on bool) {
		g.flock.Rules.View = behavior.ViewFromOrigin
		if on {
			g.flock.Rules.View = behavior.ViewFromHeading
		}
		g.logger.Infof("Field of view: %s", g.flock.Rules.View)
	}
	g.widgetStats = g.panel.AddCheckbox("Show stats", true)
	g.panel.AddButton("Respawn", g.respawn)
	g.panel.EndSection()
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	if _, anomaly := g.timer.Sample(); anomaly {
		g.logger.Warnf("Wall clock went backward, frame delta reported as zero")
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.press(k); err != nil {
			return err
		}
	}

	if g.showControls {
		g.panel.Update()
		g.applyGains()
	}

	if err := g.tick(); err != nil {
		return err
	}
	g.logBenchmarks(start)
	return nil
}

// press applies a key binding. Escape ends the game loop.
func (g *Game) press(k ebiten.Key) error {
	switch k {
	case ebiten.KeyEscape:
		g.logger.Info("Escape pressed, quitting")
		return ebiten.Termination
	case ebiten.KeyTab:
		g.showControls = !g.showControls
	case ebiten.KeySpace:
		g.paused = !g.paused
		g.logger.Debugf("Paused: %t at tick %d", g.paused, g.ticks)
	case ebiten.KeyN:
		if g.paused {
			g.stepOnce = true
		}
	case ebiten.KeyR:
		g.respawn()
	}
	return nil
}

// tick advances the flock by one fixed step unless the game is paused.
func (g *Game) tick() error {
	if g.paused && !g.stepOnce {
		return nil
	}
	g.stepOnce = false
	if err := g.flock.Step(g.params); err != nil {
		return fmt.Errorf("tick %d: %w", g.ticks, err)
	}
	g.ticks++
	g.ticksSinceLog++
	return nil
}

func (g *Game) applyGains() {
	g.flock.Rules.Gains = behavior.Gains{
		Boundary:   g.widgetBoundary.Value,
		Cohesion:   g.widgetCohesion.Value,
		Alignment:  g.widgetAlignment.Value,
		Separation: g.widgetSeparation.Value,
	}
}

func (g *Game) respawn() {
	g.flock.Respawn(g.rng, g.cfg.MaxVelocity, g.cfg.GridWidth, g.cfg.GridHeight)
	g.logger.Infof("Respawned %d boids at tick %d", g.flock.Len(), g.ticks)
}

func (g *Game) logBenchmarks(now time.Time) {
	if g.lastLogTime.IsZero() {
		g.lastLogTime = now
		return
	}
	elapsed := now.Sub(g.lastLogTime)
	if elapsed < time.Second {
		return
	}
	g.logger.Infof("📊 TICK RATE: %.1f/sec | FPS: %.1f TPS: %.1f | Update: %.2fms Draw: %.2fms | Boids: %d",
		float64(g.ticksSinceLog)/elapsed.Seconds(),
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.updateAvg, g.drawAvg, g.flock.Len())
	g.ticksSinceLog = 0
	g.lastLogTime = now
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	g.screen.Bind(screen)
	g.plot()

	if g.showControls {
		g.panel.Draw(screen)
	}
	if g.widgetStats.Value {
		ebitenutil.DebugPrintAt(screen, g.stats(), g.cfg.WindowWidth-150, 10)
	}
}

// plot renders the current flock through the world.
func (g *Game) plot() {
	g.world.Reset()
	for i := range g.flock.Boids {
		p := g.flock.Boids[i].Pos
		g.world.AddPoint(p.X, p.Y)
	}
}

func (g *Game) stats() string {
	msg := fmt.Sprintf("Tick: %d\nFPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		g.ticks,
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	if g.paused {
		msg += "\n\nPAUSED (N steps)"
	}
	return msg
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.WindowWidth, g.cfg.WindowHeight }
