package sharkshark

import (
	"fmt"
	"math"
	"strings"

	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

// Minimum screen size for the playfield.
const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 1
	footerRows = 1
)

// Right-facing fish glyphs by size class 1-4. Left-facing glyphs are mirrored.
var fishGlyphs = [4]string{"><>", ">{}>", ">{##}>", ">>{###}>"}

// Player glyphs by tier 1-5.
var playerGlyphs = [sim.MaxTier]string{"<*>", "<(*)>", "<((*))>", "<(((*)))>", "<<(((*)))>"}

const apexGlyph = "}==/^\\===>"

// Render draws the arena, entities, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows)
	dst.DrawBox(field, core.ColorBlue)
	view := viewport{
		x: field.X + 1, y: field.Y + 1,
		w: field.W - 2, h: field.H - 2,
		arena: w.Arena,
	}

	for _, e := range w.Entities {
		g.renderEntity(dst, view, e)
	}
	g.renderPlayer(dst, view)
	g.renderFooter(dst)

	switch w.Mode {
	case sim.ModePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case sim.ModeGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R restart  Tab difficulty", w.Run.Score))
	case sim.ModeTitle:
		renderOverlay(dst, g.title, "Eat smaller fish. Bite the apex from behind. R to start")
	}
}

// viewport maps arena units onto a cell rectangle.
type viewport struct {
	x, y, w, h int
	arena      sim.Arena
}

func (v viewport) cell(p core.Vec2) (int, int) {
	cx := v.x + int(math.Floor(p.X/v.arena.Width*float64(v.w)))
	cy := v.y + int(math.Floor(p.Y/v.arena.Height*float64(v.h)))
	return cx, cy
}

// draw centres a glyph on p, clipped to the viewport.
func (v viewport) draw(dst *core.Screen, p core.Vec2, glyph string, c core.Color) {
	cx, cy := v.cell(p)
	if cy < v.y || cy >= v.y+v.h {
		return
	}
	runes := []rune(glyph)
	start := cx - len(runes)/2
	for i, r := range runes {
		x := start + i
		if x >= v.x && x < v.x+v.w {
			dst.SetColored(x, cy, r, c)
		}
	}
}

func (g *Game) renderEntity(dst *core.Screen, v viewport, e sim.Entity) {
	b := sim.BodyOf(e)
	right := b.Vel.X >= 0
	tier := g.world.Player.Tier
	now := g.world.Run.Elapsed

	switch ent := e.(type) {
	case *sim.Prey:
		c := core.ColorGreen
		if sim.Threatens(ent.Size, tier) {
			c = core.ColorRed
		}
		v.draw(dst, b.Pos, facing(fishGlyphs[ent.Size-1], right), c)
	case *sim.Predator:
		c := core.ColorYellow
		if sim.Threatens(ent.Size, tier) {
			c = core.ColorRed
		}
		v.draw(dst, b.Pos, facing(fishGlyphs[ent.Size-1], right), c)
	case *sim.Hazard:
		v.draw(dst, b.Pos, "*", core.ColorMagenta)
	case *sim.Apex:
		c := core.ColorRed
		if ent.Combat.FlashUntil > now {
			c = core.ColorWhite
		}
		v.draw(dst, b.Pos, facing(apexGlyph, right), c)
		health := healthBar(ent.Combat.Health, ent.Combat.MaxHealth)
		v.draw(dst, b.Pos.Sub(core.V(0, b.Radius)), health, core.ColorOrange)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	p := g.world.Player
	now := g.world.Run.Elapsed
	c := core.ColorCyan
	if now < p.InvulnerableUntil && int(now*8)%2 == 0 {
		c = core.ColorGray
	}
	glyph := playerGlyphs[core.Clamp(p.Tier, 1, sim.MaxTier)-1]
	v.draw(dst, p.Pos, glyph, c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" %s  Score: %d  Lives: %s  Size: %d/%d  Eaten: %d",
		g.title, w.Run.Score, strings.Repeat("♥", max(w.Player.Lives, 0)),
		w.Player.Tier, sim.MaxTier, w.Run.PreyEaten)
	dst.DrawText(0, 0, hud)

	if w.Threat.Active > 0 || g.hud.Threat() > 0 {
		gauge := "APEX " + ThreatBar(g.hud.Threat(), 10)
		dst.DrawTextColored(dst.Width()-len(gauge)-1, 0, gauge, core.ColorRed)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	banners := g.hud.Banners()
	if len(banners) == 0 {
		dst.DrawTextColored(1, y, "arrows/WASD swim  P pause  Q quit", core.ColorGray)
		return
	}
	x := 1
	for _, b := range banners {
		dst.DrawTextColored(x, y, b.Text, b.Color)
		x += len([]rune(b.Text)) + 3
	}
}

// facing mirrors a right-facing glyph when the entity swims left.
func facing(glyph string, right bool) string {
	if right {
		return glyph
	}
	runes := []rune(glyph)
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = mirrorRune(r)
	}
	return string(out)
}

func mirrorRune(r rune) rune {
	switch r {
	case '>':
		return '<'
	case '<':
		return '>'
	case '{':
		return '}'
	case '}':
		return '{'
	case '(':
		return ')'
	case ')':
		return '('
	case '/':
		return '\\'
	case '\\':
		return '/'
	default:
		return r
	}
}

func healthBar(health, maxHealth int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := core.Clamp(health, 0, maxHealth)
	return strings.Repeat("■", filled) + strings.Repeat("□", maxHealth-filled)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
