package sim

import (
	"math"
	"testing"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

func TestSanitizeMove(t *testing.T) {
	tests := []struct {
		in   core.Vec2
		want core.Vec2
	}{
		{core.V(0.5, -0.5), core.V(0.5, -0.5)},
		{core.V(1, 1), core.V(1, 1)},
		{core.V(3, -7), core.V(1, -1)},
		{core.V(math.NaN(), 0.2), core.V(0, 0.2)},
		{core.V(math.Inf(-1), math.Inf(1)), core.V(-1, 1)},
	}
	for _, tt := range tests {
		if got := SanitizeMove(tt.in); got != tt.want {
			t.Errorf("SanitizeMove(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	for i := 0; i < 600; i++ {
		w, _ = Step(w, Input{Move: core.V(-1, -1)}, tick, &scriptedRand{})
	}
	if w.Player.Pos.X != w.Player.Radius || w.Player.Pos.Y != w.Player.Radius {
		t.Errorf("player = %v, expected pinned at (%v, %v)", w.Player.Pos, w.Player.Radius, w.Player.Radius)
	}

	for i := 0; i < 600; i++ {
		w, _ = Step(w, Input{Move: core.V(1, 1)}, tick, &scriptedRand{})
	}
	if w.Player.Pos.X != w.Arena.Width-w.Player.Radius || w.Player.Pos.Y != w.Arena.Height-w.Player.Radius {
		t.Errorf("player = %v, expected pinned at the far corner", w.Player.Pos)
	}
}

func TestPlayerVelocitySmoothed(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	next, _ := Step(w, Input{Move: core.V(1, 0)}, tick, &scriptedRand{})

	full := w.Profile.Player.Speed
	if next.Player.Vel.X <= 0 || next.Player.Vel.X >= full {
		t.Errorf("velocity after one tick = %v, expected between 0 and %v", next.Player.Vel.X, full)
	}
}

func TestWrap(t *testing.T) {
	a := DefaultArena()
	const r = 10.0
	tests := []struct {
		in, want core.Vec2
	}{
		{core.V(-5, 100), core.V(-5, 100)},
		{core.V(-11, 100), core.V(a.Width+r, 100)},
		{core.V(a.Width+11, 100), core.V(-r, 100)},
		{core.V(100, -11), core.V(100, a.Height+r)},
		{core.V(100, a.Height+11), core.V(100, -r)},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, r, a); got != tt.want {
			t.Errorf("wrap(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestSmallFishFlees(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	setTier(&w, 3)
	w.Player.Pos = core.V(400, 270)
	w.add(&Prey{Body: Body{Pos: core.V(460, 270), Vel: core.V(-40, 0), Cruise: 40}, Size: 1})

	before := core.Distance(w.Player.Pos, BodyOf(w.Entities[0]).Pos)
	for i := 0; i < 60; i++ {
		w, _ = Step(w, still, tick, &scriptedRand{})
	}
	after := core.Distance(w.Player.Pos, BodyOf(w.Entities[0]).Pos)
	if after <= before {
		t.Errorf("distance %v -> %v, expected prey to flee", before, after)
	}
}

func TestDistantSmallFishCruises(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Pos = core.V(100, 100)
	vel := core.V(-40, 0)
	w.add(&Prey{Body: Body{Pos: core.V(700, 400), Vel: vel, Cruise: 40}, Size: 1})

	next, _ := Step(w, still, tick, &scriptedRand{})
	if got := BodyOf(next.Entities[0]).Vel; got != vel {
		t.Errorf("cruise velocity = %v, expected %v", got, vel)
	}
}

func TestLargeFishChases(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Pos = core.V(300, 270)
	w.add(&Predator{Body: Body{Pos: core.V(600, 270), Vel: core.V(0, 60), Cruise: 80}, Size: 3})

	before := core.Distance(w.Player.Pos, BodyOf(w.Entities[0]).Pos)
	for i := 0; i < 60; i++ {
		w, _ = Step(w, still, tick, &scriptedRand{})
	}
	after := core.Distance(w.Player.Pos, BodyOf(w.Entities[0]).Pos)
	if after >= before {
		t.Errorf("distance %v -> %v, expected predator to close in", before, after)
	}
	if vx := BodyOf(w.Entities[0]).Vel.X; vx >= 0 {
		t.Errorf("predator vx = %v, expected to turn toward the player", vx)
	}
}

func TestChaseSpeedScalesWithGap(t *testing.T) {
	steer := func(size SizeClass) float64 {
		b := Body{Pos: core.V(600, 270), Cruise: 80}
		p := Player{Pos: core.V(300, 270), Tier: 1}
		// A full-snap dt reveals the target velocity.
		return steerFish(b, size, p, 0.5, 10).Len()
	}
	if steer(4) <= steer(2) {
		t.Error("larger size gap should chase faster")
	}
}

func TestHazardBobs(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	drift := core.V(30, 0)
	w.add(&Hazard{Body: Body{Pos: core.V(400, 200), Vel: drift}, Drift: drift, Phase: math.Pi / 2})

	next, _ := Step(w, still, tick, &scriptedRand{})
	v := BodyOf(next.Entities[0]).Vel
	if v.X != drift.X {
		t.Errorf("hazard vx = %v, expected drift %v", v.X, drift.X)
	}
	if v.Y == 0 {
		t.Error("hazard should bob vertically")
	}
}
