package ui

import "fmt"

// Justify selects how a Horizontal or Vertical layout distributes space
// between its children.
type Justify uint8

const (
	// JustifyPadding separates children by a fixed gap and sizes the
	// container to fit them.
	JustifyPadding Justify = iota
	// JustifySpaceBetween spreads children over a fixed length with equal
	// gaps and no leading or trailing gap.
	JustifySpaceBetween
	// JustifySpaceEvenly spreads children over a fixed length with equal
	// gaps, including before the first and after the last child.
	JustifySpaceEvenly
)

func (j Justify) String() string {
	switch j {
	case JustifyPadding:
		return "padding"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return fmt.Sprintf("Justify(%d)", uint8(j))
}

// Line configures a Horizontal or Vertical layout.
type Line struct {
	Padding float64
	Justify Justify
	// Length is the main-axis size of the container. It is required by
	// every mode except JustifyPadding.
	Length float64
}

func (l Line) validate() error {
	switch l.Justify {
	case JustifyPadding:
		return nil
	case JustifySpaceBetween, JustifySpaceEvenly:
		if l.Length <= 0 {
			return fmt.Errorf("%v without a length: %w", l.Justify, ErrConfig)
		}
		return nil
	}
	return fmt.Errorf("unknown justification %v: %w", l.Justify, ErrConfig)
}

// spacing returns the main-axis size of the container, the gap between
// consecutive children and the offset of the first child.
func (l Line) spacing(sizes []float64) (length, gap, start float64) {
	var sum float64
	for _, s := range sizes {
		sum += s
	}
	n := float64(len(sizes))

	switch l.Justify {
	case JustifySpaceBetween:
		if len(sizes) > 1 {
			gap = (l.Length - sum) / (n - 1)
		}
		return l.Length, gap, 0
	case JustifySpaceEvenly:
		gap = (l.Length - sum) / (n + 1)
		return l.Length, gap, gap
	default:
		if len(sizes) == 0 {
			return 0, l.Padding, 0
		}
		return sum + l.Padding*(n-1), l.Padding, 0
	}
}

func (l Line) info() []string {
	return []string{
		fmt.Sprintf("padding: %g", l.Padding),
		fmt.Sprintf("justify: %v", l.Justify),
		fmt.Sprintf("length: %g", l.Length),
	}
}
