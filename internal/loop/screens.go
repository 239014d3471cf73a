package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
)

// Playfield aspect ratio in terminal cells: one cell is one pixel wide and
// two pixels tall, so a 3:2 field needs three columns per row.
const colsPerRow = 2 * config.ScreenWidth / config.ScreenHeight

// TerminalRenderer draws the match on an ANSI terminal.
type TerminalRenderer struct {
	w         io.Writer
	canvas    *draw.Canvas
	cw        *draw.ChunkWriter
	termSize  draw.TermSizeFunc
	prevState GameState
	started   bool
}

var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer writing to w, sized by termSize.
func NewTerminalRenderer(w io.Writer, termSize draw.TermSizeFunc) *TerminalRenderer {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	return &TerminalRenderer{
		w:        w,
		canvas:   draw.NewScaledCanvas(0, 0, config.ScreenWidth, config.ScreenHeight),
		cw:       draw.NewChunkWriter(w, 0, 0),
		termSize: termSize,
	}
}

// Render draws one frame.
func (r *TerminalRenderer) Render(m *MatchState) error {
	if !r.started {
		draw.HideCursor(r.w)
		r.started = true
		r.cw.ClearScreen()
	}
	r.updateScreen()

	// On screen transitions, do a full clear so text from the previous
	// screen doesn't persist.
	if m.State != r.prevState {
		r.cw.ClearScreen()
		r.canvas.ForceRedraw()
		r.prevState = m.State
	}

	r.canvas.Clear()
	if m.State == GameStatePlaying {
		r.drawField(m)
	}
	if err := r.canvas.Render(r.cw); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.cw); err != nil {
		return err
	}

	switch m.State {
	case GameStateStart:
		r.drawStartScreen()
	case GameStatePlaying:
		r.drawScores(m)
	case GameStateGameOver:
		r.drawGameOverScreen(m)
	}

	return r.cw.Flush()
}

// Close restores the cursor and clears the screen.
func (r *TerminalRenderer) Close() {
	draw.ClearScreen(r.w)
	draw.ShowCursor(r.w)
}

// updateScreen handles terminal resize, keeping the field's aspect ratio
// and centering it. On actual size changes the terminal is cleared to remove
// residual pixels outside the new canvas area.
func (r *TerminalRenderer) updateScreen() {
	termWidth, termHeight, err := r.termSize()
	if err != nil {
		return
	}
	width, height, offsetCol, offsetRow := fitPlayfield(termWidth, termHeight)

	if width != r.canvas.TerminalWidth() || height != r.canvas.TerminalHeight() ||
		offsetCol != r.canvas.OffsetCol() || offsetRow != r.canvas.OffsetRow() {
		r.cw.ClearScreen()
		r.canvas.Resize(width, height)
		r.canvas.ForceRedraw()
	}
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.cw.SetOffset(offsetCol, offsetRow)
}

// fitPlayfield returns the largest 3:2 render area that fits the terminal
// and the offsets that center it.
func fitPlayfield(termWidth, termHeight int) (width, height, offsetCol, offsetRow int) {
	width = termWidth
	height = termWidth / colsPerRow
	if height > termHeight {
		height = termHeight
		width = height * colsPerRow
	}
	offsetCol = (termWidth - width) / 2
	offsetRow = (termHeight - height) / 2
	return
}

// drawField draws the center line, paddles and ball onto the canvas.
func (r *TerminalRenderer) drawField(m *MatchState) {
	r.canvas.DashedVLine(config.ScreenWidth/2, 2, 2)

	left := m.Left.Bounds()
	right := m.Right.Bounds()
	r.canvas.FillRect(left.X, left.Y, left.Width, left.Height)
	r.canvas.FillRect(right.X, right.Y, right.Width, right.Height)
	r.canvas.FillCircle(m.Ball.X, m.Ball.Y, m.Ball.Radius())
}

// textAt returns the terminal position of a logical point.
func (r *TerminalRenderer) textAt(x, y float64) (col, row int) {
	return r.canvas.LogicalToTerminal(x, y)
}

// drawStartScreen draws the title screen.
func (r *TerminalRenderer) drawStartScreen() {
	const w, h = config.ScreenWidth, config.ScreenHeight

	col, row := r.textAt(w/2, h/3)
	r.cw.WriteCentered(col, row, draw.ColorWhite, "P O N G")

	col, row = r.textAt(w/2, h/2)
	r.cw.WriteCentered(col, row, draw.ColorGreen, "Press Any Key to Start")

	col, row = r.textAt(w/4, h*3/4)
	r.cw.WriteCentered(col, row, draw.ColorYellow, "P1: W/S")

	col, row = r.textAt(w*3/4, h*3/4)
	r.cw.WriteCentered(col, row, draw.ColorYellow, "P2: UP/DOWN")

	col, row = r.textAt(w/2, h-1)
	r.cw.WriteCentered(col, row, draw.ColorDefault, "Q to quit")
}

// drawScores draws both scores near the top of the field.
// Scores are padded so a shrinking number leaves no residue.
func (r *TerminalRenderer) drawScores(m *MatchState) {
	const w = config.ScreenWidth

	col, row := r.textAt(w/4, 20)
	r.cw.WriteColorAt(col, row, draw.ColorYellow, fmt.Sprintf("%-2d", m.LeftScore))

	right := fmt.Sprintf("%2d", m.RightScore)
	col, row = r.textAt(w*3/4, 20)
	r.cw.WriteColorAt(col-len(right), row, draw.ColorYellow, right)
}

// drawGameOverScreen draws the winner and restart prompt.
func (r *TerminalRenderer) drawGameOverScreen(m *MatchState) {
	const w, h = config.ScreenWidth, config.ScreenHeight

	col, row := r.textAt(w/2, h/3)
	r.cw.WriteCentered(col, row, draw.ColorRed, "GAME OVER")

	col, row = r.textAt(w/2, h/2)
	r.cw.WriteCentered(col, row, draw.ColorGreen, fmt.Sprintf("%s Wins!", m.Winner))

	col, row = r.textAt(w/2, h*2/3)
	r.cw.WriteCentered(col, row, draw.ColorWhite, "Press Any Key to Restart")
}
