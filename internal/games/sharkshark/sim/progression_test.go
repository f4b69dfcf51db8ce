package sim

import (
	"reflect"
	"testing"

	"github.com/gulati8/SharkShark/internal/config"
)

func TestGrowthStopsAtMaxTier(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Run.Score = 4500

	events := progress(&w)
	var tiers []int
	for _, e := range events {
		if g, ok := e.(GrowthEvent); ok {
			tiers = append(tiers, g.Tier)
		}
	}
	if !reflect.DeepEqual(tiers, []int{2, 3, 4, 5}) {
		t.Errorf("growth tiers = %v, expected [2 3 4 5]", tiers)
	}
	if w.Player.Tier != MaxTier || w.Player.Radius != PlayerRadius(MaxTier) {
		t.Errorf("tier %d radius %v", w.Player.Tier, w.Player.Radius)
	}

	w.Run.Score = 9000
	for _, e := range progress(&w) {
		if _, ok := e.(GrowthEvent); ok {
			t.Error("no growth beyond max tier")
		}
	}
}

func TestExtraLivesAtMaxTier(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	step := w.Profile.Scoring.ExtraLifeStep
	lives := w.Player.Lives

	w.Run.Score = step - 1
	progress(&w)
	if w.Player.Lives != lives {
		t.Fatalf("lives = %d before the threshold", w.Player.Lives)
	}

	w.Run.Score = 2*step + 10
	events := progress(&w)
	var got []int
	for _, e := range events {
		if x, ok := e.(ExtraLifeEvent); ok {
			got = append(got, x.Lives)
		}
	}
	if !reflect.DeepEqual(got, []int{lives + 1, lives + 2}) {
		t.Errorf("extra lives = %v, expected [%d %d]", got, lives+1, lives+2)
	}
	if w.Run.NextExtraLifeAt != 3*step {
		t.Errorf("NextExtraLifeAt = %d, expected %d", w.Run.NextExtraLifeAt, 3*step)
	}
}

func TestNoExtraLifeBelowMaxTier(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Run.NextGrowthAt = 1 << 30
	w.Run.Score = 3 * w.Profile.Scoring.ExtraLifeStep
	lives := w.Player.Lives

	progress(&w)
	if w.Player.Lives != lives {
		t.Errorf("lives = %d, expected no extra life below max tier", w.Player.Lives)
	}
}

func TestMilestones(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Player.Tier = MaxTier
	w.Run.NextExtraLifeAt = 1 << 30

	steps := []struct {
		score int
		want  []int
	}{
		{999, nil},
		{1000, []int{1}},
		{1500, nil},
		{3200, []int{3}},
		{3300, nil},
	}
	for _, s := range steps {
		w.Run.Score = s.score
		var got []int
		for _, e := range progress(&w) {
			if m, ok := e.(MilestoneEvent); ok {
				got = append(got, m.Tier)
			}
		}
		if !reflect.DeepEqual(got, s.want) {
			t.Errorf("score %d milestones = %v, expected %v", s.score, got, s.want)
		}
	}
}

func TestThreatDecaysWithoutApex(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Threat.Intensity = 0.8
	w.Threat.Reported = 0.8

	prev := w.Threat.Intensity
	sawZero := false
	for i := 0; i < 2000; i++ {
		for _, e := range updateThreat(&w, tick) {
			if ev, ok := e.(ApexIntensityEvent); ok && ev.Intensity == 0 {
				sawZero = true
			}
		}
		if w.Threat.Intensity > prev {
			t.Fatalf("intensity rose without an apex: %v -> %v", prev, w.Threat.Intensity)
		}
		prev = w.Threat.Intensity
	}
	if w.Threat.Intensity != 0 || !sawZero {
		t.Errorf("intensity = %v sawZero = %v, expected a final zero report", w.Threat.Intensity, sawZero)
	}
}

func TestThreatTracksApexDamage(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	a := &Apex{Combat: newCombat(4, 0.6)}
	b := &Apex{Combat: newCombat(4, 0.6)}
	a.Combat.Health = 1
	b.Combat.Health = 4
	w.add(a)
	w.add(b)

	events := updateThreat(&w, tick)
	want := (0.75 + 0) / 2
	if w.Threat.Intensity != want || w.Threat.Active != 2 {
		t.Errorf("intensity = %v active = %d, expected %v and 2", w.Threat.Intensity, w.Threat.Active, want)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v, expected one intensity report", eventNames(events))
	}

	if events := updateThreat(&w, tick); len(events) != 0 {
		t.Errorf("unchanged intensity reported again: %v", eventNames(events))
	}
}

func TestThreatBounds(t *testing.T) {
	w := quietWorld(t, config.PresetNormal)
	w.Threat.Intensity = 5
	a := &Apex{Combat: newCombat(2, 0.6)}
	a.Combat.Health = -4
	w.add(a)

	updateThreat(&w, tick)
	if w.Threat.Intensity < 0 || w.Threat.Intensity > 1 {
		t.Errorf("intensity = %v, expected within [0,1]", w.Threat.Intensity)
	}

	w.Entities = nil
	w.Threat.Intensity = -3
	updateThreat(&w, tick)
	if w.Threat.Intensity != 0 {
		t.Errorf("intensity = %v, expected 0", w.Threat.Intensity)
	}
}

func TestPlayerRadiusMonotonic(t *testing.T) {
	prev := 0.0
	for tier := 1; tier <= MaxTier; tier++ {
		r := PlayerRadius(tier)
		if r <= prev {
			t.Errorf("radius for tier %d = %v, expected above %v", tier, r, prev)
		}
		prev = r
	}
	if PlayerRadius(0) != PlayerRadius(1) || PlayerRadius(9) != PlayerRadius(MaxTier) {
		t.Error("out of range tiers should clamp")
	}
}
