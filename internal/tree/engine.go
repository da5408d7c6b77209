package tree

import (
	"context"

	"github.com/san-kum/bonsai/internal/rng"
)

// Engine owns the worklist of branch segments and the seeded random source.
// It is single-threaded; one goroutine drives it at a time.
type Engine struct {
	opts     Options
	rng      *rng.Source
	worklist []*Segment
	cells    []Cell
	branches int
	steps    int
}

func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		opts: opts,
		rng:  rng.New(opts.Seed),
	}, nil
}

// Sprout seeds the tree with its single initial trunk segment at the bottom
// center of the viewport. Sprouting a non-empty tree is a programmer error.
func (e *Engine) Sprout() error {
	if len(e.worklist) != 0 {
		return ErrAlreadySprouted
	}
	e.spawn(Trunk, e.opts.Width/2, e.opts.Height-1, e.opts.Life)
	return nil
}

// Grow advances every live segment by one step, sprouting first if the tree
// is empty. Segments spawned during the pass mature starting with the next
// call. Returns true while any segment still has life.
func (e *Engine) Grow() bool {
	if len(e.worklist) == 0 {
		// First growth call; Sprout cannot fail on an empty worklist.
		_ = e.Sprout()
	}

	frontier := len(e.worklist)
	for i := 0; i < frontier; i++ {
		s := e.worklist[i]
		if s.Life == 0 {
			continue
		}
		e.step(s)
	}
	e.steps++

	return !e.Done()
}

// GrowAll batch-grows the tree to completion, checking ctx between passes so
// a responsive caller can abandon a long grow.
func (e *Engine) GrowAll(ctx context.Context) error {
	for e.Grow() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return nil
}

// step applies one growth tick: age the segment, move it, evaluate the
// spawn rules, and record the drawable cell.
func (e *Engine) step(s *Segment) {
	s.Life--

	age := e.opts.Life - s.Life
	if age < 0 {
		age = 0
	}

	dx, dy := e.deltas(s, age)
	if e.opts.ClampDeltas {
		dx, dy = clampUnit(dx), clampUnit(dy)
	}
	// Damp downward drift near the bottom edge.
	if dy > 0 && s.Y >= e.opts.Height-1-bottomMargin {
		dy--
	}

	s.X = clamp(s.X+dx, 0, e.opts.Width-1)
	s.Y = clamp(s.Y+dy, 0, e.opts.Height-1)

	// The cooldown elapses before rule evaluation, so a reset of
	// 2*multiplier blocks shoot spawns for exactly that many steps.
	s.cooldown--
	e.applySpawnRules(s)

	e.cells = append(e.cells, Cell{X: s.X, Y: s.Y, DX: dx, DY: dy, Kind: s.Kind, Style: s.Style})
}

// spawnRule pairs a trigger with its spawn action. Rules are evaluated in
// order, first match wins: a segment near end-of-life always transitions to
// a leaf cluster before branching eligibility is considered, which keeps
// every lineage terminating in bounded extra steps.
type spawnRule struct {
	name string
	when func(e *Engine, s *Segment) bool
	then func(e *Engine, s *Segment)
}

var spawnRules = []spawnRule{
	{
		name: "leaf burst",
		when: func(e *Engine, s *Segment) bool { return s.Life < 3 },
		then: func(e *Engine, s *Segment) { e.spawn(Dead, s.X, s.Y, s.Life) },
	},
	{
		name: "trunk dieback",
		when: func(e *Engine, s *Segment) bool {
			return s.Kind == Trunk && s.Life < e.opts.Multiplier+2
		},
		then: func(e *Engine, s *Segment) { e.spawn(Dying, s.X, s.Y, s.Life) },
	},
	{
		name: "shoot dieback",
		when: func(e *Engine, s *Segment) bool {
			return (s.Kind == ShootLeft || s.Kind == ShootRight) && s.Life < e.opts.Multiplier+2
		},
		then: func(e *Engine, s *Segment) { e.spawn(Dying, s.X, s.Y, s.Life) },
	},
	{
		name: "branch",
		when: func(e *Engine, s *Segment) bool {
			return (s.Kind == Trunk && e.rng.Roll(3) == 0) || s.Life%e.opts.Multiplier == 0
		},
		then: func(e *Engine, s *Segment) {
			if e.rng.Roll(8) == 0 && s.Life > 7 {
				// Secondary trunk; forks the silhouette.
				e.spawn(Trunk, s.X, s.Y, s.Life+e.rng.Roll(5)-2)
				return
			}
			if s.cooldown > 0 {
				return
			}
			s.cooldown = 2 * e.opts.Multiplier
			kind := ShootLeft
			if e.rng.Roll(2) == 0 {
				kind = ShootRight
			}
			e.spawn(kind, s.X, s.Y, s.Life+e.opts.Multiplier)
		},
	},
}

func (e *Engine) applySpawnRules(s *Segment) {
	for i := range spawnRules {
		if spawnRules[i].when(e, s) {
			spawnRules[i].then(e, s)
			return
		}
	}
}

func (e *Engine) spawn(k Kind, x, y, life int) {
	if life < 0 {
		life = 0
	}
	e.worklist = append(e.worklist, &Segment{
		X:        x,
		Y:        y,
		Life:     life,
		Kind:     k,
		Style:    e.rng.Roll(styleWidth(k)),
		cooldown: e.opts.Multiplier,
	})
	e.branches++
}

// styleWidth is the palette size a segment kind draws its style tag from.
// The renderer maps (kind, style) to a concrete color and, for leaves, a
// glyph from the configured leaf set.
func styleWidth(k Kind) int {
	switch k {
	case Dying, Dead:
		return 4
	default:
		return 2
	}
}

// Done reports whether every segment has exhausted its life.
func (e *Engine) Done() bool {
	for _, s := range e.worklist {
		if s.Life > 0 {
			return false
		}
	}
	return len(e.worklist) > 0
}

// Cells returns the ordered drawable trace, one cell per processed step.
func (e *Engine) Cells() []Cell { return e.cells }

// Branches returns how many segments have ever been created.
func (e *Engine) Branches() int { return e.branches }

// Steps returns how many engine-level growth calls have run.
func (e *Engine) Steps() int { return e.steps }

// Alive returns the number of segments with life remaining.
func (e *Engine) Alive() int {
	n := 0
	for _, s := range e.worklist {
		if s.Life > 0 {
			n++
		}
	}
	return n
}

// Seed returns the effective random seed, resolved from the wall clock when
// the options left it unset. This is the value a checkpoint stores.
func (e *Engine) Seed() int64 { return e.rng.Seed() }

// Options returns the engine's configuration snapshot.
func (e *Engine) Options() Options { return e.opts }

// Segments returns a snapshot of the current worklist for inspection.
func (e *Engine) Segments() []Segment {
	out := make([]Segment, len(e.worklist))
	for i, s := range e.worklist {
		out[i] = *s
	}
	return out
}
