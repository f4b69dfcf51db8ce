package sharkshark

import (
	"testing"

	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

func worldAt(now float64) sim.World {
	return sim.World{Run: sim.Run{Elapsed: now}}
}

func TestHUDBanners(t *testing.T) {
	var h HUD
	h.Reset(sim.World{})

	h.Consume([]sim.Event{sim.GrowthEvent{Tier: 2}}, worldAt(1))
	banners := h.Banners()
	if len(banners) != 1 || banners[0].Text != "GROWTH! Size 2" || banners[0].Color != core.ColorGreen {
		t.Fatalf("banners = %+v", banners)
	}

	h.Consume([]sim.Event{sim.MilestoneEvent{Tier: 3}, sim.ApexKilledEvent{Points: 300}}, worldAt(1.5))
	banners = h.Banners()
	if len(banners) != maxBanners {
		t.Fatalf("banners = %d, expected %d", len(banners), maxBanners)
	}
	if banners[0].Text != "APEX DOWN! +300" {
		t.Errorf("newest banner = %q", banners[0].Text)
	}

	h.Consume(nil, worldAt(10))
	if len(h.Banners()) != 0 {
		t.Errorf("banners should expire, got %+v", h.Banners())
	}
}

func TestHUDFinalHitHasNoBanner(t *testing.T) {
	var h HUD
	h.Reset(sim.World{})
	h.Consume([]sim.Event{sim.PlayerHitEvent{LivesRemaining: 0}, sim.GameOverEvent{FinalScore: 10}}, worldAt(2))
	if len(h.Banners()) != 0 {
		t.Errorf("banners = %+v, expected none on game over", h.Banners())
	}
	if !h.RecentlyHit(2.5) || h.RecentlyHit(4) {
		t.Error("RecentlyHit window wrong")
	}
}

func TestHUDThreat(t *testing.T) {
	var h HUD
	h.Reset(sim.World{})

	w := worldAt(1)
	w.Threat.Active = 1
	h.Consume([]sim.Event{sim.ApexIntensityEvent{Intensity: 0.4}}, w)
	if h.Threat() != 0.4 {
		t.Errorf("Threat() = %v, expected 0.4", h.Threat())
	}
	if len(h.Banners()) != 1 || h.Banners()[0].Color != core.ColorRed {
		t.Errorf("apex arrival should raise a warning banner, got %+v", h.Banners())
	}

	h.Consume(nil, w)
	if len(h.Banners()) != 1 {
		t.Error("warning should fire once per arrival")
	}
}

func TestThreatBar(t *testing.T) {
	tests := []struct {
		v     float64
		width int
		want  string
	}{
		{0, 4, "[....]"},
		{1, 4, "[####]"},
		{0.5, 4, "[##..]"},
		{2, 4, "[####]"},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		if got := ThreatBar(tt.v, tt.width); got != tt.want {
			t.Errorf("ThreatBar(%v, %d) = %q, expected %q", tt.v, tt.width, got, tt.want)
		}
	}
}
