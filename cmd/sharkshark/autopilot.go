package main

import (
	"math"

	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

const (
	dangerMargin = 70.0 // Extra distance at which threats start to repel
	fleeWeight   = 3.0
	tailTier     = 3 // Smallest tier that goes after the apex tail
)

// pilot is the headless player: it swims toward the nearest edible fish,
// goes for the apex tail once big enough, and is pushed away from every
// threat in range.
func pilot(w sim.World) core.InputFrame {
	frame := core.NewInputFrame()
	if w.Mode != sim.ModePlaying {
		return frame
	}

	p := w.Player
	var flee, target core.Vec2
	best := math.Inf(1)

	for _, e := range w.Entities {
		b := sim.BodyOf(e)
		d := core.Distance(p.Pos, b.Pos)

		if sim.CanEat(p.Tier, e) {
			if d < best {
				best, target = d, b.Pos
			}
			continue
		}

		if apex, ok := e.(*sim.Apex); ok && p.Tier >= tailTier && behind(apex, p.Pos) {
			if d < best {
				best, target = d, tailPoint(apex)
			}
			continue
		}

		danger := dangerMargin + b.Radius + p.Radius
		if d < danger && d > 0 {
			flee = flee.Add(p.Pos.Sub(b.Pos).Normalize().Scale((danger - d) / danger))
		}
	}

	move := flee.Scale(fleeWeight)
	if !math.IsInf(best, 1) {
		move = move.Add(target.Sub(p.Pos).Normalize())
	}
	frame.Move = move
	return frame
}

// behind reports whether pos is on the tail side of a moving apex.
func behind(a *sim.Apex, pos core.Vec2) bool {
	heading := a.Vel
	if heading.IsZero() {
		return false
	}
	rel := pos.Sub(a.Pos)
	return rel.X*heading.X+rel.Y*heading.Y < 0
}

// tailPoint is a point just behind the apex along its heading.
func tailPoint(a *sim.Apex) core.Vec2 {
	return a.Pos.Sub(a.Vel.Normalize().Scale(a.Radius))
}
