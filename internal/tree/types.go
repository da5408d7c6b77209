// Package tree implements the bonsai growth engine: a stochastic branching
// process that expands a single trunk into a full tree, one life tick at a
// time, under a seeded random source.
package tree

// Kind classifies a segment's role in the tree.
type Kind int

const (
	Trunk Kind = iota
	ShootLeft
	ShootRight
	Dying
	Dead
)

func (k Kind) String() string {
	switch k {
	case Trunk:
		return "trunk"
	case ShootLeft:
		return "shoot_left"
	case ShootRight:
		return "shoot_right"
	case Dying:
		return "dying"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// Segment is one growing unit. Position and life are mutated only by the
// segment's own growth steps; kind and style are fixed at creation.
type Segment struct {
	X, Y  int
	Life  int
	Kind  Kind
	Style int

	// cooldown gates how often this lineage may spawn shoots.
	cooldown int
}

// Cell is one drawable unit recorded per segment step. DX/DY are the step's
// direction, which the renderer uses for glyph selection.
type Cell struct {
	X, Y   int
	DX, DY int
	Kind   Kind
	Style  int
}

// Parameter bounds enforced by Options.Validate.
const (
	MinLife       = 1
	MaxLife       = 200
	MinMultiplier = 1
	MaxMultiplier = 20
)

// Options is the immutable configuration snapshot for one engine.
type Options struct {
	// Width and Height are the viewport size in cells. Positions saturate
	// at [0, Width-1] x [0, Height-1]; the trunk sprouts at the bottom
	// center.
	Width  int
	Height int

	// Life is the trunk's starting life; it bounds how many steps any
	// lineage takes before dying off.
	Life int

	// Multiplier tunes branching frequency and shoot lifespan.
	Multiplier int

	// Seed selects the random sequence. Zero means time-based.
	Seed int64

	// ClampDeltas restricts per-step movement to {-1,0,1} after table
	// lookup, trading visual spread for viewport safety.
	ClampDeltas bool
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return ErrViewportBounds
	}
	if o.Life < MinLife || o.Life > MaxLife {
		return ErrLifeBounds
	}
	if o.Multiplier < MinMultiplier || o.Multiplier > MaxMultiplier {
		return ErrMultiplierBounds
	}
	return nil
}
