package replay

import (
	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/games/sharkshark/sim"
)

// Recorder accumulates the input of one run.
type Recorder struct {
	rep Replay
}

// NewRecorder starts a recording for a run seeded with seed.
func NewRecorder(game string, seed int64, p config.Profile) *Recorder {
	return &Recorder{rep: Replay{
		Version: Version,
		Game:    game,
		Seed:    seed,
		Profile: p,
	}}
}

// Record appends one tick. Identical consecutive ticks share a frame.
func (r *Recorder) Record(in sim.Input, dt float64) {
	f := Frame{Count: 1, DT: dt, MoveX: in.Move.X, MoveY: in.Move.Y, Pause: in.TogglePause}
	if n := len(r.rep.Frames); n > 0 {
		last := &r.rep.Frames[n-1]
		if last.DT == f.DT && last.MoveX == f.MoveX && last.MoveY == f.MoveY && last.Pause == f.Pause {
			last.Count++
			return
		}
	}
	r.rep.Frames = append(r.rep.Frames, f)
}

// Finish stamps the final world's outcome and returns the replay.
// The recorder may keep recording afterwards.
func (r *Recorder) Finish(w sim.World) Replay {
	rep := r.rep
	rep.Frames = append([]Frame(nil), r.rep.Frames...)
	rep.Result = resultOf(w)
	return rep
}
