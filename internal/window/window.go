// Package window runs the match in a desktop window using ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
)

const title = "Arcade Pong"

var (
	colorWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorRed    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorGreen  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorBlack  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorYellow = color.RGBA{0xff, 0xff, 0x00, 0xff}
)

// Game adapts a loop.Driver to ebiten.Game. ebiten owns the frame timing,
// so the driver is fed through Update rather than Run.
type Game struct {
	driver *loop.Driver
	faces  Faces

	// Reused per frame
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []input.Event
}

var _ ebiten.Game = (*Game)(nil)

// New creates a window game around driver.
func New(driver *loop.Driver, faces Faces) *Game {
	return &Game{driver: driver, faces: faces}
}

// Run opens the window and blocks until the match is quit or the window closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.TargetTPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update collects this tick's key transitions and advances the match.
func (g *Game) Update() error {
	g.events = g.events[:0]
	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, input.Quit())
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	g.events = appendEvents(g.events, g.pressed, g.released)

	if !g.driver.Update(g.events) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)

	m := g.driver.Match()
	switch m.State {
	case loop.GameStateStart:
		g.drawStartScreen(screen)
	case loop.GameStatePlaying:
		g.drawField(screen, m)
	case loop.GameStateGameOver:
		g.drawGameOverScreen(screen, m)
	}
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	const w, h = config.ScreenWidth, config.ScreenHeight

	drawText(screen, "PONG", g.faces.Title, w/2, h/3, text.AlignCenter, text.AlignCenter, colorWhite)
	drawText(screen, "Press Any Key to Start", g.faces.Message, w/2, h/2, text.AlignCenter, text.AlignCenter, colorGreen)
	drawText(screen, "P1: W/S", g.faces.Message, w/4, h*3/4, text.AlignCenter, text.AlignCenter, colorYellow)
	drawText(screen, "P2: UP/DOWN", g.faces.Message, w*3/4, h*3/4, text.AlignCenter, text.AlignCenter, colorYellow)
}

func (g *Game) drawGameOverScreen(screen *ebiten.Image, m *loop.MatchState) {
	const w, h = config.ScreenWidth, config.ScreenHeight

	drawText(screen, "GAME OVER", g.faces.Title, w/2, h/3, text.AlignCenter, text.AlignCenter, colorRed)
	drawText(screen, m.Winner+" Wins!", g.faces.Message, w/2, h/2, text.AlignCenter, text.AlignCenter, colorGreen)
	drawText(screen, "Press Any Key to Restart", g.faces.Message, w/2, h*2/3, text.AlignCenter, text.AlignCenter, colorWhite)
}

func (g *Game) drawField(screen *ebiten.Image, m *loop.MatchState) {
	const w, h = config.ScreenWidth, config.ScreenHeight

	vector.StrokeLine(screen, w/2, 0, w/2, h, 2, colorWhite, false)

	left, right := m.Left.Bounds(), m.Right.Bounds()
	vector.DrawFilledRect(screen, float32(left.X), float32(left.Y), float32(left.Width), float32(left.Height), colorGreen, false)
	vector.DrawFilledRect(screen, float32(right.X), float32(right.Y), float32(right.Width), float32(right.Height), colorGreen, false)
	vector.DrawFilledCircle(screen, float32(m.Ball.X), float32(m.Ball.Y), float32(m.Ball.Radius()), colorRed, true)

	drawText(screen, fmt.Sprint(m.LeftScore), g.faces.Score, w/4, 20, text.AlignStart, text.AlignStart, colorYellow)
	drawText(screen, fmt.Sprint(m.RightScore), g.faces.Score, w*3/4, 20, text.AlignEnd, text.AlignStart, colorYellow)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, primary, secondary text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(dst, s, face, op)
}
