package palette

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Stop pins a color to a position on an arbitrary axis (pixel index, degrees, percent...).
type Stop struct {
	Color    Color
	Position float64
}

// Scale interpolates linearly between its stops and clamps outside of them.
type Scale struct {
	stops []Stop
}

// NewScale sorts a copy of the stops by position. Stops sharing a position keep their order.
func NewScale(stops ...Stop) Scale {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return Scale{stops: sorted}
}

func (s Scale) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

// Choose returns the color at pos. A position on a stop gets that stop's color unchanged, a position
// between two stops gets the per channel linear blend of the pair.
func (s Scale) Choose(pos float64) Color {
	lower, hasLower := s.lowerBound(pos)
	upper, hasUpper := s.upperBound(pos)

	switch {
	case hasLower && hasUpper:
		if lower.Position == upper.Position {
			return lower.Color
		}
		mult := (pos - lower.Position) / (upper.Position - lower.Position)
		return lower.Color.BlendRgb(upper.Color, mult)
	case hasLower:
		return lower.Color
	case hasUpper:
		return upper.Color
	}

	log.Warnf("No color stops to choose a color for %v from", pos)
	return Fallback
}

// Between returns one color per integer position in [start, end].
func (s Scale) Between(start, end int) []Color {
	if end < start {
		return nil
	}
	colors := make([]Color, 0, end-start+1)
	for pos := start; pos <= end; pos++ {
		colors = append(colors, s.Choose(float64(pos)))
	}
	return colors
}

// lowerBound is the last stop at or below pos.
func (s Scale) lowerBound(pos float64) (Stop, bool) {
	for i := len(s.stops) - 1; i >= 0; i-- {
		if pos >= s.stops[i].Position {
			return s.stops[i], true
		}
	}
	return Stop{}, false
}

// upperBound is the first stop at or above pos.
func (s Scale) upperBound(pos float64) (Stop, bool) {
	for _, stop := range s.stops {
		if pos <= stop.Position {
			return stop, true
		}
	}
	return Stop{}, false
}
