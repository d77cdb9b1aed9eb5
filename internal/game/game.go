// Package game is the interactive window: it turns pointer, slider and
// keyboard input into commands on the animation driver, runs one driver
// frame per ebiten update, and draws the derived figure.
package game

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/chord-angle/internal/animation"
	"github.com/iburimskiy/chord-angle/internal/config"
	"github.com/iburimskiy/chord-angle/internal/explain"
	"github.com/iburimskiy/chord-angle/internal/geometry"
	"github.com/iburimskiy/chord-angle/internal/panel"
	"github.com/iburimskiy/chord-angle/internal/sound"
)

const (
	controlsY    = 510
	spreadSlideY = 590
	pSlideY      = 590
	panelY       = 620
	panelWrap    = 116
)

// Game implements ebiten.Game.
type Game struct {
	ctx    context.Context
	state  *geometry.State
	driver *animation.Driver
	view   geometry.Viewport
	panel  *panel.Panel
	bell   *sound.Bell
	tap    *sound.Tap

	playBtn   *button
	resetBtn  *button
	askBtn    *button
	exportBtn *button
	spread    *slider
	pSlider   *slider

	// pointer drag on the figure
	draggingP bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// RestoreExplanation shows an explanation cached by an earlier session
// until the first new request finishes.
func (g *Game) RestoreExplanation(text string) {
	g.panel.Restore(text)
}

// New builds the game. The state lives in model units centered at the
// origin; the viewport places it on screen.
func New(ctx context.Context, explainer panel.Explainer, muted bool) *Game {
	state := geometry.NewState(geometry.Point{}, config.DefaultRadius)
	g := &Game{
		ctx:    ctx,
		state:  state,
		driver: animation.NewDriver(state, config.TickIncrement),
		view: geometry.Viewport{
			Origin: geometry.Point{X: config.FigureCenterX, Y: config.FigureCenterY},
			Scale:  config.PixelsPerUnit,
		},
		panel:   panel.New(explainer),
		prevKey: map[ebiten.Key]bool{},
	}
	g.bell, g.tap = newBell(muted)

	x := config.SliderX
	step := config.ButtonWidth + config.ButtonGap
	g.playBtn = newButton(x, controlsY, "Play")
	g.resetBtn = newButton(x+step, controlsY, "Reset")
	g.askBtn = newButton(x+2*step, controlsY, "Ask tutor")
	g.exportBtn = newButton(x+3*step, controlsY, "Save PNG")

	g.spread = &slider{
		x: config.SliderX, y: spreadSlideY, w: config.SliderWidth,
		min: config.ChordSpreadMin, max: config.ChordSpreadMax, step: 1,
		label: "Chord / central angle",
	}
	g.pSlider = &slider{
		x: config.WindowWidth - config.SliderX - config.SliderWidth, y: pSlideY, w: config.SliderWidth,
		min: 0, max: 360, step: 1,
		label: "Position of P",
	}

	g.driver.OnCross = func(geometry.Arc) {
		if g.bell != nil {
			g.bell.Ring()
		}
	}
	return g
}

// Close stops the animation for good.
func (g *Game) Close() {
	g.driver.Close()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.panel.Poll()

	mouseX, mouseY := ebiten.CursorPosition()

	g.askBtn.disabled = g.panel.Loading()
	if g.playBtn.update(mouseX, mouseY) {
		g.driver.Toggle()
	}
	if g.resetBtn.update(mouseX, mouseY) {
		g.driver.Reset()
	}
	if g.askBtn.update(mouseX, mouseY) {
		g.askTutor()
	}
	if g.exportBtn.update(mouseX, mouseY) {
		g.export()
	}

	if v, ok := g.spread.update(mouseX, mouseY); ok && v != g.state.ChordSpread {
		g.driver.SetChordSpread(v)
	}
	if v, ok := g.pSlider.update(mouseX, mouseY); ok {
		g.driver.SetPAngle(v)
	}

	g.updateFigureDrag(mouseX, mouseY)

	if justPressed(ebiten.KeySpace) {
		g.driver.Toggle()
	}
	if justPressed(ebiten.KeyR) {
		g.driver.Reset()
	}
	if justPressed(ebiten.KeyLeft) {
		g.driver.NudgePAngle(-1)
	}
	if justPressed(ebiten.KeyRight) {
		g.driver.NudgePAngle(1)
	}
	if justPressed(ebiten.KeyUp) {
		g.driver.SetChordSpread(g.state.ChordSpread + 1)
	}
	if justPressed(ebiten.KeyDown) {
		g.driver.SetChordSpread(g.state.ChordSpread - 1)
	}
	if justPressed(ebiten.KeyE) && !g.panel.Loading() {
		g.askTutor()
	}
	if justPressed(ebiten.KeyS) {
		g.export()
	}
	if justPressed(ebiten.KeyM) && g.bell != nil {
		g.bell.SetMuted(!g.bell.Muted())
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Manual input above has already paused the driver if it touched P.
	g.driver.Frame()
	return nil
}

// updateFigureDrag places P under the pointer while the figure is pressed.
func (g *Game) updateFigureDrag(mouseX, mouseY int) {
	cursor := geometry.Point{X: float64(mouseX), Y: float64(mouseY)}
	inFigure := mouseY < controlsY-config.ButtonGap &&
		geometry.Distance(cursor, g.view.Origin) <= g.state.Radius*g.view.Scale+2*config.AngleMarkerRadius

	if inFigure && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.draggingP = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.draggingP = false
	}
	if g.draggingP && geometry.Distance(cursor, g.view.Origin) > 0 {
		g.driver.SetPAngle(geometry.AngleFrom(g.state.Center, g.view.FromScreen(cursor)))
	}
}

// askTutor sends a frozen copy of the current figure to the explainer.
func (g *Game) askTutor() {
	snap := g.driver.Snapshot()
	if !snap.AngleDefined {
		return
	}
	g.panel.Ask(g.ctx, explain.Params{
		ChordLength: snap.ChordLength,
		Angle:       snap.CurrentAngle,
		Radius:      snap.Radius,
		ChordSpread: snap.ChordSpread,
	})
}

func (g *Game) export() {
	if err := exportDialog(g.driver.Snapshot()); err != nil {
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 248, G: 250, B: 252, A: 255})

	snap := g.driver.Snapshot()
	g.drawFigure(screen, snap)
	g.drawReadout(screen, snap)

	if g.driver.Status() == animation.Playing {
		g.playBtn.label = "Pause"
	} else {
		g.playBtn.label = "Play"
	}
	if g.panel.Loading() {
		g.askBtn.label = "Thinking..."
	} else {
		g.askBtn.label = "Ask tutor"
	}
	for _, b := range []*button{g.playBtn, g.resetBtn, g.askBtn, g.exportBtn} {
		b.draw(screen)
	}

	g.spread.draw(screen, snap.ChordSpread, color.RGBA{R: 79, G: 70, B: 229, A: 255})
	g.pSlider.draw(screen, snap.PAngle, color.RGBA{R: 244, G: 63, B: 94, A: 255})

	g.drawPanel(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
