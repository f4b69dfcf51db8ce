package sim

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
)

func TestEatScenario(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	setTier(&w, 2)
	w.Player.Pos = core.V(400, 270)
	id := w.add(&Prey{Body: Body{Pos: w.Player.Pos}, Size: 1})

	next, events := Step(w, still, tick, &scriptedRand{})

	want := []string{"eat", "score"}
	if got := eventNames(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	score := events[1].(ScoreEvent)
	expected := int(math.Floor(90 * w.Profile.Scoring.Multiplier))
	if score.Amount != expected {
		t.Errorf("score amount = %d, expected %d", score.Amount, expected)
	}
	if hasEntity(next, id) {
		t.Error("eaten prey should be removed")
	}
	if next.Run.PreyEaten != 1 {
		t.Errorf("PreyEaten = %d, expected 1", next.Run.PreyEaten)
	}
	if !reflect.DeepEqual(next.Events, events) {
		t.Error("World.Events should hold the step's events")
	}
}

func TestPlayerHitScenario(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	start := core.V(500, 270)
	w.Player.Pos = start
	w.add(&Predator{Body: Body{Pos: start}, Size: 3})

	next, events := Step(w, still, tick, &scriptedRand{floats: []float64{0.9}})

	if len(events) != 1 {
		t.Fatalf("events = %v, expected a single player-hit", eventNames(events))
	}
	hit, ok := events[0].(PlayerHitEvent)
	if !ok {
		t.Fatalf("event = %T, expected PlayerHitEvent", events[0])
	}
	if hit.LivesRemaining != w.Profile.Player.StartingLives-1 {
		t.Errorf("LivesRemaining = %d, expected %d", hit.LivesRemaining, w.Profile.Player.StartingLives-1)
	}
	if next.Player.Pos == start {
		t.Error("player should respawn away from the collision")
	}
	if next.Player.Pos.X != respawnX {
		t.Errorf("respawn x = %v, expected %v", next.Player.Pos.X, respawnX)
	}
	if !next.Player.Vel.IsZero() {
		t.Error("respawn should zero velocity")
	}
	if next.Player.InvulnerableUntil <= next.Run.Elapsed {
		t.Error("respawn should grant invulnerability")
	}
}

func TestRespawnCullsNearbyEntities(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Pos = core.V(500, 270)
	near := w.add(&Prey{Body: Body{Pos: core.V(respawnX+30, 270)}, Size: 1})
	w.add(&Predator{Body: Body{Pos: w.Player.Pos}, Size: 4})
	later := w.add(&Prey{Body: Body{Pos: core.V(respawnX, 300)}, Size: 1})
	far := w.add(&Prey{Body: Body{Pos: core.V(800, 100)}, Size: 1})

	next, _ := Step(w, still, tick, &scriptedRand{})

	if hasEntity(next, near) || hasEntity(next, later) {
		t.Error("entities near the respawn point should be culled")
	}
	if !hasEntity(next, far) {
		t.Error("distant entities should survive")
	}
	if next.Run.PreyEaten != 0 {
		t.Error("culled prey must not be eaten")
	}
}

func TestInvulnerablePlayerIgnoresHostiles(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Pos = core.V(500, 270)
	w.Player.InvulnerableUntil = 10
	id := w.add(&Predator{Body: Body{Pos: w.Player.Pos}, Size: 3})

	next, events := Step(w, still, tick, &scriptedRand{})

	if len(events) != 0 {
		t.Errorf("events = %v, expected none", eventNames(events))
	}
	if next.Player.Lives != w.Player.Lives {
		t.Error("invulnerable player should not lose a life")
	}
	if !hasEntity(next, id) {
		t.Error("hostile should survive the contact")
	}
}

func TestApexKillScenario(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	apex := &Apex{
		Body:   Body{Pos: core.V(500, 270), Vel: core.V(50, 0), Cruise: 80},
		Combat: newCombat(1, 0.6),
	}
	id := w.add(apex)
	w.Player.Pos = core.V(450, 270)

	next, events := Step(w, still, tick, &scriptedRand{})

	want := []string{"apex-hit", "apex-killed", "score"}
	if got := eventNames(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	hit := events[0].(ApexHitEvent)
	if hit.Health != 0 || hit.MaxHealth != 1 || hit.EntityID != id {
		t.Errorf("apex hit = %+v", hit)
	}
	killed := events[1].(ApexKilledEvent)
	if killed.Points != apexKillFactor*hit.Points {
		t.Errorf("kill bonus = %d, expected %d", killed.Points, apexKillFactor*hit.Points)
	}
	if score := events[2].(ScoreEvent); score.Amount != hit.Points+killed.Points {
		t.Errorf("score amount = %d, expected %d", score.Amount, hit.Points+killed.Points)
	}
	if hasEntity(next, id) {
		t.Error("killed apex should be removed")
	}
	if next.Run.ApexKills != 1 || next.Threat.Intensity != 0 {
		t.Errorf("kills = %d, intensity = %v", next.Run.ApexKills, next.Threat.Intensity)
	}
}

func TestApexHealthFloorInEvents(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	setTier(&w, MaxTier)
	w.add(&Apex{
		Body:   Body{Pos: core.V(500, 270), Vel: core.V(50, 0), Cruise: 80},
		Combat: newCombat(2, 0.52),
	})
	w.Player.Pos = core.V(440, 270)

	_, events := Step(w, still, tick, &scriptedRand{})

	if len(events) == 0 {
		t.Fatal("expected an apex hit")
	}
	hit, ok := events[0].(ApexHitEvent)
	if !ok {
		t.Fatalf("first event = %T, expected ApexHitEvent", events[0])
	}
	if hit.Damage != 3 || hit.Health != 0 {
		t.Errorf("hit = %+v, expected damage 3 and health clamped to 0", hit)
	}
}

func TestApexFrontContactIsHarmless(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	id := w.add(&Apex{
		Body:   Body{Pos: core.V(500, 270), Vel: core.V(50, 0), Cruise: 80},
		Combat: newCombat(8, 0.6),
	})
	w.Player.Pos = core.V(540, 270)

	next, events := Step(w, still, tick, &scriptedRand{})

	for _, e := range events {
		switch e.(type) {
		case PlayerHitEvent, ApexHitEvent:
			t.Errorf("front contact produced %s", EventName(e))
		}
	}
	if next.Player.Lives != w.Player.Lives || !hasEntity(next, id) {
		t.Error("front contact should change nothing")
	}
}

func TestApexCooldown(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.add(&Apex{
		Body:   Body{Pos: core.V(500, 270), Vel: core.V(50, 0), Cruise: 80},
		Combat: newCombat(8, 0.6),
	})
	w.Player.Pos = core.V(450, 270)

	hits := 0
	for i := 0; i < 12; i++ {
		var events []Event
		w, events = Step(w, still, tick, &scriptedRand{})
		for _, e := range events {
			if _, ok := e.(ApexHitEvent); ok {
				hits++
			}
		}
	}
	if hits != 1 {
		t.Errorf("hits within cooldown = %d, expected 1", hits)
	}
}

func TestDoubleGrowthScenario(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Run.Score = 1950
	w.Run.Milestone = 1
	w.Player.Pos = core.V(400, 270)
	w.add(&Prey{Body: Body{Pos: w.Player.Pos}, Size: 1})

	next, events := Step(w, still, tick, &scriptedRand{})

	var tiers []int
	for _, e := range events {
		if g, ok := e.(GrowthEvent); ok {
			tiers = append(tiers, g.Tier)
		}
	}
	if !reflect.DeepEqual(tiers, []int{2, 3}) {
		t.Fatalf("growth tiers = %v, expected [2 3]", tiers)
	}
	want := []string{"eat", "score", "growth", "growth", "milestone"}
	if got := eventNames(events); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, expected %v", got, want)
	}
	if next.Player.Radius != PlayerRadius(3) {
		t.Errorf("radius = %v, expected %v", next.Player.Radius, PlayerRadius(3))
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Lives = 1
	w.Player.Pos = core.V(500, 270)
	w.add(&Predator{Body: Body{Pos: w.Player.Pos}, Size: 4})
	w.add(&Prey{Body: Body{Pos: core.V(800, 100), Vel: core.V(30, 0), Cruise: 30}, Size: 1})

	over, events := Step(w, still, tick, &scriptedRand{})
	want := []string{"player-hit", "game-over"}
	if got := eventNames(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	if over.Mode != ModeGameOver || over.Player.Lives != 0 {
		t.Fatalf("mode = %v lives = %d", over.Mode, over.Player.Lives)
	}

	after := over
	for i := 0; i < 30; i++ {
		var evs []Event
		after, evs = Step(after, Input{Move: core.V(1, 1), TogglePause: i%2 == 0}, tick, rand.New(rand.NewSource(1)))
		if len(evs) != 0 {
			t.Fatalf("game over step produced %v", eventNames(evs))
		}
	}
	over.Events = nil
	if !reflect.DeepEqual(after, over) {
		t.Error("steps after game over must not change the world")
	}
}

func TestGameOverTickStillProgresses(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Lives = 1
	w.Player.Pos = core.V(500, 270)
	w.Run.Score = 950
	w.add(&Prey{Body: Body{Pos: w.Player.Pos}, Size: 1})
	w.add(&Predator{Body: Body{Pos: w.Player.Pos}, Size: 4})

	next, events := Step(w, still, tick, &scriptedRand{})

	want := []string{"eat", "score", "player-hit", "game-over", "growth", "milestone"}
	if got := eventNames(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	if next.Mode != ModeGameOver {
		t.Fatalf("mode = %v, expected game over", next.Mode)
	}
	if next.Run.Score != 1040 || next.Player.Tier != 2 || next.Run.Milestone != 1 {
		t.Errorf("score = %d tier = %d milestone = %d", next.Run.Score, next.Player.Tier, next.Run.Milestone)
	}
	if sum := next.Summary(); sum.Tier != 2 || sum.Score != 1040 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestNoExtraLifeAfterGameOver(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	setTier(&w, MaxTier)
	w.Player.Lives = 1
	w.Player.Pos = core.V(500, 270)
	w.Run.Score = w.Run.NextExtraLifeAt - 10
	w.Run.Milestone = w.Run.Score / milestoneStep
	w.add(&Prey{Body: Body{Pos: w.Player.Pos}, Size: 1})
	w.add(&Hazard{Body: Body{Pos: w.Player.Pos}})

	next, events := Step(w, still, tick, &scriptedRand{})

	for _, name := range eventNames(events) {
		if name == "extra-life" {
			t.Fatalf("events = %v, no extra life expected after game over", eventNames(events))
		}
	}
	if next.Mode != ModeGameOver || next.Player.Lives != 0 {
		t.Errorf("mode = %v lives = %d", next.Mode, next.Player.Lives)
	}
}

func TestSurvivorsKeepOrder(t *testing.T) {
	tests := []struct {
		name     string
		tier     int
		entities []Entity
		want     []EntityID
	}{
		{
			name: "eat in the middle",
			tier: 2,
			entities: []Entity{
				&Prey{Body: Body{Pos: core.V(800, 100)}, Size: 1},
				&Prey{Body: Body{Pos: core.V(500, 270)}, Size: 1},
				&Hazard{Body: Body{Pos: core.V(300, 60)}},
				&Predator{Body: Body{Pos: core.V(700, 450)}, Size: 1},
			},
			want: []EntityID{1, 3, 4},
		},
		{
			name: "respawn cull",
			tier: 1,
			entities: []Entity{
				&Prey{Body: Body{Pos: core.V(800, 100)}, Size: 1},
				&Predator{Body: Body{Pos: core.V(500, 270)}, Size: 4},
				&Prey{Body: Body{Pos: core.V(respawnX+20, 280)}, Size: 1},
				&Hazard{Body: Body{Pos: core.V(300, 60)}},
				&Prey{Body: Body{Pos: core.V(700, 450)}, Size: 1},
			},
			want: []EntityID{1, 2, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := quietWorld(t, config.PresetNormal)
			setTier(&w, tt.tier)
			w.Player.Pos = core.V(500, 270)
			for _, e := range tt.entities {
				w.add(e)
			}

			next, _ := Step(w, still, tick, &scriptedRand{})

			got := make([]EntityID, len(next.Entities))
			for i, e := range next.Entities {
				got[i] = BodyOf(e).ID
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("survivors = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestModeTransitions(t *testing.T) {
	w := NewWorld(profile(t, config.PresetNormal))
	if w.Mode != ModeTitle {
		t.Fatalf("NewWorld mode = %v, expected title", w.Mode)
	}

	idle, _ := Step(w, Input{Move: core.V(1, 0)}, tick, &scriptedRand{})
	if idle.Run.Ticks != 0 || idle.Player.Pos != w.Player.Pos {
		t.Error("title should not advance the simulation")
	}

	w = StartRun(w)
	if w.Mode != ModePlaying {
		t.Fatalf("StartRun mode = %v, expected playing", w.Mode)
	}
	w.Run.Score = 500
	if again := StartRun(w); again.Run.Score != 500 {
		t.Error("StartRun during play should be a no-op")
	}

	paused, _ := Step(w, Input{TogglePause: true}, tick, &scriptedRand{})
	if paused.Mode != ModePaused || paused.Run.Ticks != w.Run.Ticks {
		t.Fatalf("pause toggle: mode = %v ticks = %d", paused.Mode, paused.Run.Ticks)
	}
	frozen, _ := Step(paused, Input{Move: core.V(1, 0)}, tick, &scriptedRand{})
	if frozen.Player.Pos != paused.Player.Pos || frozen.Run.Elapsed != paused.Run.Elapsed {
		t.Error("paused world should not move")
	}
	resumed, _ := Step(frozen, Input{TogglePause: true}, tick, &scriptedRand{})
	if resumed.Mode != ModePlaying || resumed.Run.Ticks != w.Run.Ticks+1 {
		t.Errorf("resume: mode = %v ticks = %d", resumed.Mode, resumed.Run.Ticks)
	}

	hard := profile(t, config.PresetHard)
	if got := SetDifficulty(resumed, hard); got.Profile.Name != config.PresetNormal {
		t.Error("SetDifficulty during a run should be a no-op")
	}
	resumed.Mode = ModeGameOver
	swapped := SetDifficulty(resumed, hard)
	if swapped.Mode != ModeTitle || swapped.Profile.Name != config.PresetHard || swapped.Run.Score != 0 {
		t.Errorf("SetDifficulty after game over = mode %v profile %s score %d", swapped.Mode, swapped.Profile.Name, swapped.Run.Score)
	}
	if restarted := StartRun(resumed); restarted.Mode != ModePlaying || restarted.Run.Score != 0 {
		t.Error("StartRun after game over should rebuild the run")
	}
}

func TestClampStep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.016, 0.016},
		{-1, 0},
		{1, MaxStep},
		{math.NaN(), 0},
		{math.Inf(1), MaxStep},
	}
	for _, tt := range tests {
		if got := ClampStep(tt.in); got != tt.want {
			t.Errorf("ClampStep(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}

	w := quietWorld(t, config.PresetNormal)
	next, _ := Step(w, still, 10, &scriptedRand{})
	if next.Run.Elapsed != MaxStep {
		t.Errorf("elapsed after stall = %v, expected %v", next.Run.Elapsed, MaxStep)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.add(&Prey{Body: Body{Pos: core.V(700, 200), Vel: core.V(-40, 0), Cruise: 40}, Size: 2})
	before := BodyOf(w.Entities[0])

	Step(w, Input{Move: core.V(1, 0)}, tick, &scriptedRand{})

	if BodyOf(w.Entities[0]) != before {
		t.Error("Step must not mutate the previous world's entities")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() World {
		rng := rand.New(rand.NewSource(12345))
		w := StartRun(NewWorld(profile(t, config.PresetHard)))
		for i := 0; i < 3000; i++ {
			move := core.V(math.Sin(float64(i)/40), math.Cos(float64(i)/55))
			w, _ = Step(w, Input{Move: move}, tick, rng)
		}
		return w
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged: score %d vs %d, entities %d vs %d",
			a.Run.Score, b.Run.Score, len(a.Entities), len(b.Entities))
	}
}

// TestRunInvariants drives long random runs and checks the properties that
// must hold on every tick.
func TestRunInvariants(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		p := profile(t, config.PresetHard)
		p.Spawn.Apex = config.SpawnRule{Rate: 0.5, Cap: 3}
		w := StartRun(NewWorld(p))
		rng := rand.New(rand.NewSource(seed))
		input := rand.New(rand.NewSource(seed * 7))

		lastID := EntityID(0)
		for i := 0; i < 4000 && w.Mode == ModePlaying; i++ {
			prevTier, prevScore := w.Player.Tier, w.Run.Score
			move := core.V(input.Float64()*2.4-1.2, input.Float64()*2.4-1.2)
			dt := input.Float64() * 0.08

			var events []Event
			w, events = Step(w, Input{Move: move}, dt, rng)

			if w.Player.Tier < prevTier || w.Player.Tier < 1 || w.Player.Tier > MaxTier {
				t.Fatalf("seed %d tick %d: tier %d -> %d", seed, i, prevTier, w.Player.Tier)
			}
			if w.Run.Score < prevScore {
				t.Fatalf("seed %d tick %d: score decreased %d -> %d", seed, i, prevScore, w.Run.Score)
			}
			if w.Player.Lives <= 0 && w.Mode != ModeGameOver {
				t.Fatalf("seed %d tick %d: no lives but mode %v", seed, i, w.Mode)
			}
			if w.Threat.Intensity < 0 || w.Threat.Intensity > 1 {
				t.Fatalf("seed %d tick %d: intensity %v", seed, i, w.Threat.Intensity)
			}
			for _, e := range events {
				switch ev := e.(type) {
				case ApexHitEvent:
					if ev.Health < 0 {
						t.Fatalf("seed %d tick %d: negative apex health %d", seed, i, ev.Health)
					}
				case ScoreEvent:
					if ev.Amount < 0 {
						t.Fatalf("seed %d tick %d: negative score delta", seed, i)
					}
				}
			}
			for _, e := range w.Entities {
				if id := BodyOf(e).ID; id > lastID {
					lastID = id
				}
			}
			if lastID >= w.NextID {
				t.Fatalf("seed %d tick %d: id %d not below NextID %d", seed, i, lastID, w.NextID)
			}
			seen := make(map[EntityID]bool, len(w.Entities))
			for _, e := range w.Entities {
				id := BodyOf(e).ID
				if seen[id] {
					t.Fatalf("seed %d tick %d: duplicate id %d", seed, i, id)
				}
				seen[id] = true
			}
		}
	}
}
