package sharkshark

import (
	"fmt"

	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

// Banner durations in run seconds.
const (
	bannerShort = 1.2
	bannerLong  = 2.5
	maxBanners  = 2
)

// Banner is a timed HUD message.
type Banner struct {
	Text  string
	Color core.Color
	Until float64
}

// HUD turns simulation events into banners and tracks the threat signal.
// Its clock is run time, so banners freeze while paused.
type HUD struct {
	banners   []Banner
	threat    float64
	apexAlive int
	lastHit   float64
}

// Reset clears all banners for a new run.
func (h *HUD) Reset(w sim.World) {
	h.banners = h.banners[:0]
	h.threat = w.Threat.Intensity
	h.apexAlive = w.Threat.Active
	h.lastHit = -1
}

// Consume reads one step's events.
func (h *HUD) Consume(events []sim.Event, w sim.World) {
	now := w.Run.Elapsed

	for _, e := range events {
		switch ev := e.(type) {
		case sim.GrowthEvent:
			h.push(fmt.Sprintf("GROWTH! Size %d", ev.Tier), core.ColorGreen, now+bannerLong)
		case sim.MilestoneEvent:
			h.push(fmt.Sprintf("%d,000 POINTS", ev.Tier), core.ColorYellow, now+bannerShort)
		case sim.ExtraLifeEvent:
			h.push(fmt.Sprintf("EXTRA LIFE! x%d", ev.Lives), core.ColorCyan, now+bannerLong)
		case sim.PlayerHitEvent:
			h.lastHit = now
			if ev.LivesRemaining > 0 {
				h.push(fmt.Sprintf("OUCH! %d left", ev.LivesRemaining), core.ColorRed, now+bannerShort)
			}
		case sim.ApexHitEvent:
			h.push(fmt.Sprintf("TAIL HIT! %d/%d", ev.Health, ev.MaxHealth), core.ColorOrange, now+bannerShort)
		case sim.ApexKilledEvent:
			h.push(fmt.Sprintf("APEX DOWN! +%d", ev.Points), core.ColorMagenta, now+bannerLong)
		case sim.ApexIntensityEvent:
			h.threat = ev.Intensity
		}
	}

	if w.Threat.Active > h.apexAlive {
		h.push("APEX INCOMING - bite its tail!", core.ColorRed, now+bannerLong)
	}
	h.apexAlive = w.Threat.Active

	h.expire(now)
}

// push adds a banner, newest first, dropping the oldest beyond the limit.
func (h *HUD) push(text string, c core.Color, until float64) {
	h.banners = append([]Banner{{Text: text, Color: c, Until: until}}, h.banners...)
	if len(h.banners) > maxBanners {
		h.banners = h.banners[:maxBanners]
	}
}

func (h *HUD) expire(now float64) {
	kept := h.banners[:0]
	for _, b := range h.banners {
		if b.Until > now {
			kept = append(kept, b)
		}
	}
	h.banners = kept
}

// Banners returns the live banners, newest first.
func (h *HUD) Banners() []Banner {
	return h.banners
}

// Threat returns the last reported apex intensity.
func (h *HUD) Threat() float64 {
	return h.threat
}

// RecentlyHit reports whether the player was hit within the last second.
func (h *HUD) RecentlyHit(now float64) bool {
	return h.lastHit >= 0 && now-h.lastHit < 1
}

// ThreatBar renders intensity as a fixed-width gauge.
func ThreatBar(intensity float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(core.ClampF(intensity, 0, 1)*float64(width) + 0.5)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return "[" + string(bar) + "]"
}
