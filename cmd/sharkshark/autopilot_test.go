package main

import (
	"testing"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

func playingWorld(t *testing.T, tier int) sim.World {
	t.Helper()
	p, err := config.DefaultProfiles().Get(config.PresetNormal)
	if err != nil {
		t.Fatal(err)
	}
	w := sim.StartRun(sim.NewWorld(p))
	w.Player.Tier = tier
	w.Player.Radius = sim.PlayerRadius(tier)
	return w
}

func TestPilot(t *testing.T) {
	tests := []struct {
		name   string
		tier   int
		entity func(pos core.Vec2) sim.Entity
		wantX  float64 // sign of the expected horizontal move
	}{
		{
			name: "chases edible prey",
			tier: 1,
			entity: func(pos core.Vec2) sim.Entity {
				return &sim.Prey{Body: sim.Body{ID: 1, Pos: pos.Add(core.V(100, 0)), Radius: 10}, Size: 1}
			},
			wantX: 1,
		},
		{
			name: "flees a bigger predator",
			tier: 1,
			entity: func(pos core.Vec2) sim.Entity {
				return &sim.Predator{Body: sim.Body{ID: 1, Pos: pos.Add(core.V(-40, 0)), Radius: 22}, Size: 3}
			},
			wantX: 1,
		},
		{
			name: "goes for the apex tail from behind",
			tier: 3,
			entity: func(pos core.Vec2) sim.Entity {
				return &sim.Apex{Body: sim.Body{ID: 1, Pos: pos.Add(core.V(100, 0)), Vel: core.V(50, 0), Radius: 58}}
			},
			wantX: 1,
		},
		{
			name: "flees an apex swimming at it",
			tier: 3,
			entity: func(pos core.Vec2) sim.Entity {
				return &sim.Apex{Body: sim.Body{ID: 1, Pos: pos.Add(core.V(100, 0)), Vel: core.V(-50, 0), Radius: 58}}
			},
			wantX: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := playingWorld(t, tt.tier)
			w.Entities = []sim.Entity{tt.entity(w.Player.Pos)}

			move := pilot(w).Vector()
			if move.X*tt.wantX <= 0 {
				t.Errorf("move = %+v, expected x with sign %v", move, tt.wantX)
			}
		})
	}
}

func TestPilotIdleOutsidePlay(t *testing.T) {
	p, _ := config.DefaultProfiles().Get(config.PresetNormal)
	w := sim.NewWorld(p)

	if move := pilot(w).Vector(); !move.IsZero() {
		t.Errorf("title screen move = %+v, expected none", move)
	}
}
