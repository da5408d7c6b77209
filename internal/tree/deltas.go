package tree

import "github.com/san-kum/bonsai/internal/rng"

// Rows from the bottom edge inside which downward movement is damped.
const bottomMargin = 2

// Trunk phase thresholds relative to age and multiplier.
const (
	seedlingAge  = 2
	seedlingLife = 4
)

// deltas computes the per-step direction for a segment from its kind and
// growth phase. Bucket weights follow discrete die rolls so the same rng
// sequence always yields the same tree.
func (e *Engine) deltas(s *Segment, age int) (dx, dy int) {
	switch s.Kind {
	case Trunk:
		switch {
		case age <= seedlingAge || s.Life < seedlingLife:
			// New growth wanders sideways before committing upward.
			dx = e.rng.Roll(3) - 1

		case age < e.opts.Multiplier*3:
			// Young trunk: rise every other tick, wander with wide tails.
			// dx split 10/30/20/30/10 over {-2..2}.
			if age%2 == 0 {
				dy = -1
			}
			switch roll := e.rng.Roll(10); {
			case roll == 0:
				dx = -2
			case roll <= 3:
				dx = -1
			case roll <= 5:
				dx = 0
			case roll <= 8:
				dx = 1
			default:
				dx = 2
			}

		default:
			// Mature trunk: mostly straight up, occasional sideways nudge.
			if e.rng.Roll(10) > 2 {
				dy = -1
			}
			if e.rng.Roll(5) == 0 {
				dx = e.rng.Roll(3) - 1
			}
		}

	case ShootLeft:
		dy = shootRise(e.rng)
		// Strong leftward bias: 20% -2, 40% -1, 30% 0, 10% +1.
		switch roll := e.rng.Roll(10); {
		case roll <= 1:
			dx = -2
		case roll <= 5:
			dx = -1
		case roll <= 8:
			dx = 0
		default:
			dx = 1
		}

	case ShootRight:
		dy = shootRise(e.rng)
		switch roll := e.rng.Roll(10); {
		case roll <= 1:
			dx = 2
		case roll <= 5:
			dx = 1
		case roll <= 8:
			dx = 0
		default:
			dx = -1
		}

	case Dying:
		// Fan out wide to form the leaf cluster silhouette.
		switch roll := e.rng.Roll(15); {
		case roll == 0:
			dx = -3
		case roll <= 2:
			dx = -2
		case roll <= 5:
			dx = -1
		case roll <= 8:
			dx = 0
		case roll <= 11:
			dx = 1
		case roll <= 13:
			dx = 2
		default:
			dx = 3
		}
		// Mild upward bias: 20% up, 70% level, 10% down.
		switch roll := e.rng.Roll(10); {
		case roll <= 1:
			dy = -1
		case roll <= 8:
			dy = 0
		default:
			dy = 1
		}

	case Dead:
		dx = e.rng.Roll(3) - 1
		dy = e.rng.Roll(3) - 1
	}

	return dx, dy
}

// shootRise draws the vertical step for shoots: 25% up, 50% level, 25% down.
func shootRise(r *rng.Source) int {
	switch roll := r.Roll(4); {
	case roll == 0:
		return -1
	case roll <= 2:
		return 0
	default:
		return 1
	}
}

func clampUnit(d int) int {
	if d > 1 {
		return 1
	}
	if d < -1 {
		return -1
	}
	return d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
