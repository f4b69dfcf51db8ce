package sim

import (
	"testing"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

// scriptedRand replays fixed values. Empty scripts return 0.5 and 0.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func profile(t *testing.T, name string) config.Profile {
	t.Helper()
	p, err := config.DefaultProfiles().Get(name)
	if err != nil {
		t.Fatalf("profile %q: %v", name, err)
	}
	return p
}

// quietWorld returns a playing world with spawning disabled.
func quietWorld(t *testing.T, name string) World {
	t.Helper()
	p := profile(t, name)
	p.Spawn = config.SpawnProfile{}
	return StartRun(NewWorld(p))
}

func setTier(w *World, tier int) {
	w.Player.Tier = tier
	w.Player.Radius = PlayerRadius(tier)
	w.Run.NextGrowthAt = tier * growthStep
}

func (w *World) add(e Entity) EntityID {
	b := e.body()
	b.ID = w.NextID
	w.NextID++
	if b.Radius == 0 {
		switch v := e.(type) {
		case *Prey:
			b.Radius = fishRadius(v.Size)
		case *Predator:
			b.Radius = fishRadius(v.Size)
		case *Apex:
			b.Radius = apexRadius
		case *Hazard:
			b.Radius = hazardRadius
		}
	}
	w.Entities = append(w.Entities, e)
	return b.ID
}

func hasEntity(w World, id EntityID) bool {
	for _, e := range w.Entities {
		if BodyOf(e).ID == id {
			return true
		}
	}
	return false
}

func eventNames(events []Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = EventName(e)
	}
	return names
}

const tick = 1.0 / 60.0

var still = Input{Move: core.Vec2{}}
