package invaders

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Round-over prompt lines.
const (
	PromptTitle   = "Game Over"
	PromptRestart = "Press R to Restart"
	PromptEnd     = "Press N to kill Game"
)

// Handle is the visual counterpart of a live entity, keyed by entity id.
type Handle struct {
	ID     string
	Class  Category
	X, Y   float64
	Radius float64
}

// Scene is the render-side consumer of states. It keeps one handle per live
// entity, drops the handles of exited entities, tracks the score and shows
// the round-over prompt. Once it observes GameOver it ignores further states.
type Scene struct {
	canvas  float64
	handles map[string]Handle
	score   int
	prompt  bool
	stopped bool
}

// NewScene creates an empty scene for a square canvas of the given size.
func NewScene(canvasSize float64) *Scene {
	return &Scene{
		canvas:  canvasSize,
		handles: make(map[string]Handle),
	}
}

// Apply consumes one state. It returns false once the scene has stopped.
//
// While a round is over the ship handle keeps its last position.
func (sc *Scene) Apply(s State, score int) bool {
	if sc.stopped {
		return false
	}

	for _, e := range s.Exited {
		// Removing a handle that does not exist is a no-op.
		delete(sc.handles, e.ID)
	}

	if _, ok := sc.handles[s.Ship.ID]; !ok || !s.GameOverPending {
		sc.upsert(s.Ship)
	}
	for _, group := range [][]Entity{s.ShipBullets, s.InvaderBullets, s.BossBullets, s.Invaders, s.Boss, s.Shields} {
		for _, e := range group {
			sc.upsert(e)
		}
	}

	sc.score = score
	sc.prompt = s.GameOverPending

	if s.GameOver {
		sc.stopped = true
	}
	return true
}

func (sc *Scene) upsert(e Entity) {
	sc.handles[e.ID] = Handle{
		ID:     e.ID,
		Class:  e.Category,
		X:      e.X,
		Y:      e.Y,
		Radius: e.Radius,
	}
}

// Handle returns the handle with the given id.
func (sc *Scene) Handle(id string) (Handle, bool) {
	h, ok := sc.handles[id]
	return h, ok
}

// Handles returns all handles, shields first and bullets last, then by id.
func (sc *Scene) Handles() []Handle {
	out := make([]Handle, 0, len(sc.handles))
	for _, h := range sc.handles {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := classRank[out[i].Class], classRank[out[j].Class]
		if ri != rj {
			return ri < rj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Score returns the last displayed score.
func (sc *Scene) Score() int { return sc.score }

// PromptVisible reports whether the round-over prompt is shown.
func (sc *Scene) PromptVisible() bool { return sc.prompt }

// Stopped reports whether the scene has observed the end of the game.
func (sc *Scene) Stopped() bool { return sc.stopped }

var classRank = map[Category]int{
	CategoryShield:  0,
	CategoryInvader: 1,
	CategoryBoss:    2,
	CategoryShip:    3,
	CategoryBullet:  4,
}

type glyph struct {
	r     rune
	color core.Color
}

var classGlyphs = map[Category]glyph{
	CategoryShip:    {'▲', core.ColorShip},
	CategoryInvader: {'Ж', core.ColorInvader},
	CategoryBoss:    {'◆', core.ColorBoss},
	CategoryBullet:  {'•', core.ColorBullet},
	CategoryShield:  {'░', core.ColorShield},
}

// Draw renders the scene. Row 0 holds the HUD bar; the canvas is scaled onto
// the remaining rows.
func (sc *Scene) Draw(dst *core.Screen) {
	dst.Clear()

	for _, h := range sc.Handles() {
		switch h.Class {
		case CategoryShield:
			sc.drawRing(dst, h)
		case CategoryBoss:
			col, row := sc.project(dst, h.X, h.Y)
			g := classGlyphs[h.Class]
			dst.SetColored(col-1, row, '◀', g.color)
			dst.SetColored(col, row, g.r, g.color)
			dst.SetColored(col+1, row, '▶', g.color)
		default:
			col, row := sc.project(dst, h.X, h.Y)
			g := classGlyphs[h.Class]
			dst.SetColored(col, row, g.r, g.color)
		}
	}

	dst.DrawHLine(0, 0, dst.Width(), '─', core.ColorMuted)
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", sc.score), core.ColorHUD)
	title := " SPACE INVADERS "
	dst.DrawTextColored(dst.Width()-len(title)-2, 0, title, core.ColorMuted)

	if sc.prompt {
		drawPrompt(dst)
	}
}

// project maps canvas coordinates to a screen cell below the HUD row.
func (sc *Scene) project(dst *core.Screen, x, y float64) (col, row int) {
	col = int(math.Floor(x / sc.canvas * float64(dst.Width())))
	row = 1 + int(math.Floor(y/sc.canvas*float64(dst.Height()-1)))
	return col, row
}

// drawRing draws the upper half of a shield circle.
func (sc *Scene) drawRing(dst *core.Screen, h Handle) {
	g := classGlyphs[CategoryShield]
	const steps = 48
	for i := 0; i <= steps; i++ {
		a := math.Pi + math.Pi*float64(i)/steps
		col, row := sc.project(dst, h.X+h.Radius*math.Cos(a), h.Y+h.Radius*math.Sin(a))
		dst.SetColored(col, row, g.r, g.color)
	}
}

// drawPrompt draws the round-over message box in the center of the screen.
func drawPrompt(dst *core.Screen) {
	lines := []string{PromptTitle, "", PromptRestart, PromptEnd}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorAlert)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorAlert
		}
		dst.DrawTextCentered(boxY+1+i, l, color)
	}
}
