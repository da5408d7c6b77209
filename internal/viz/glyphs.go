package viz

import "github.com/san-kum/bonsai/internal/tree"

// Glyph picks the character string for one drawable cell from its kind and
// step direction. Leaf cells draw from the configured leaf set, keyed by
// the segment's style tag so a cluster keeps its glyph.
func Glyph(c tree.Cell, leaves []string) string {
	switch c.Kind {
	case tree.Dying, tree.Dead:
		if len(leaves) == 0 {
			return "&"
		}
		return leaves[c.Style%len(leaves)]

	case tree.ShootLeft:
		switch {
		case c.DY > 0:
			return "\\"
		case c.DY == 0:
			return "\\_"
		case c.DX < 0:
			return "\\|"
		case c.DX == 0:
			return "/|"
		default:
			return "/"
		}

	case tree.ShootRight:
		switch {
		case c.DY > 0:
			return "/"
		case c.DY == 0:
			return "_/"
		case c.DX < 0:
			return "\\|"
		case c.DX == 0:
			return "/|"
		default:
			return "/"
		}

	default: // trunk
		switch {
		case c.DY == 0:
			return "/~"
		case c.DX < 0:
			return "\\|"
		case c.DX == 0:
			return "/|\\"
		default:
			return "|/"
		}
	}
}
