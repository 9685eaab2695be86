package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var (
	red    = RGB(1, 0, 0)
	blue   = RGB(0, 0, 1)
	orange = RGB(1, 0.5, 0)
	yellow = RGB(1, 1, 0)
	green  = RGB(0, 0.5, 0)
)

func TestScale_TwoStops(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{blue, 4})

	tt := []struct {
		name string
		pos  float64
		want Color
	}{
		{"below lower bound", -2, red},
		{"on lower bound", 0, red},
		{"quarter", 1, RGB(0.75, 0, 0.25)},
		{"midpoint", 2, RGB(0.5, 0, 0.5)},
		{"three quarters", 3, RGB(0.25, 0, 0.75)},
		{"on upper bound", 4, blue},
		{"above upper bound", 20, blue},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scale.Choose(tc.pos))
		})
	}
}

func TestScale_Hex(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{blue, 4})

	assert.Equal(t, "#bf0040", scale.Choose(1).Hex())
	assert.Equal(t, "#4000bf", scale.Choose(3).Hex())
}

func TestScale_SmallScale(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{blue, 2})

	assert.Equal(t, red, scale.Choose(0))
	assert.Equal(t, RGB(0.5, 0, 0.5), scale.Choose(1))
	assert.Equal(t, blue, scale.Choose(2))
}

func TestScale_MultiStop(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{orange, 2}, Stop{yellow, 4}, Stop{green, 6})

	want := []Color{
		red,
		RGB(1, 0.25, 0),
		orange,
		RGB(1, 0.75, 0),
		yellow,
		RGB(0.5, 0.75, 0),
		green,
	}
	assert.Equal(t, want, scale.Between(0, 6))
}

func TestScale_UnsortedStops(t *testing.T) {
	scale := NewScale(Stop{green, 22}, Stop{red, 5}, Stop{yellow, 16}, Stop{orange, 11})

	assert.Equal(t, red, scale.Choose(0))
	assert.Equal(t, orange, scale.Choose(11))
	assert.Equal(t, green, scale.Choose(22))
	assert.Equal(t, green, scale.Choose(40))
	assert.Equal(t, []float64{5, 11, 16, 22}, positions(scale))
}

func TestScale_FractionalPosition(t *testing.T) {
	scale := NewScale(Stop{Black, 50}, Stop{White, 51})

	assert.Equal(t, RGB(0.5, 0.5, 0.5), scale.Choose(50.5))
}

func TestScale_SingleStop(t *testing.T) {
	scale := NewScale(Stop{orange, 3})

	for _, pos := range []float64{-10, 0, 3, 100} {
		assert.Equal(t, orange, scale.Choose(pos))
	}
}

func TestScale_Empty(t *testing.T) {
	scale := NewScale()

	assert.NotPanics(t, func() {
		assert.Equal(t, Fallback, scale.Choose(1))
	})
	assert.Equal(t, []Color{Fallback, Fallback}, scale.Between(0, 1))
}

func TestScale_DuplicatePositions(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{yellow, 3}, Stop{blue, 3}, Stop{green, 6})

	assert.Equal(t, blue, scale.Choose(3))
	assert.Equal(t, RGB(0, 0.25, 0.5), scale.Choose(4.5))
}

func TestScale_Between(t *testing.T) {
	scale := NewScale(Stop{red, 0}, Stop{blue, 4})

	assert.Len(t, scale.Between(-3, 7), 11)
	assert.Equal(t, []Color{red}, scale.Between(0, 0))
	assert.Empty(t, scale.Between(3, 2))
}

func TestScale_Immutable(t *testing.T) {
	stops := []Stop{{red, 0}, {blue, 4}}
	scale := NewScale(stops...)
	stops[0].Color = green

	assert.Equal(t, red, scale.Choose(0))

	returned := scale.Stops()
	returned[1].Color = green
	assert.Equal(t, blue, scale.Choose(4))
}

func TestScale_InterpolationStaysBetweenAdjacentStops(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(2, 6).Draw(t, "count")
		stops := make([]Stop, count)
		for i := range stops {
			stops[i] = Stop{
				Color: RGB(
					rapid.Float64Range(0, 1).Draw(t, "r"),
					rapid.Float64Range(0, 1).Draw(t, "g"),
					rapid.Float64Range(0, 1).Draw(t, "b"),
				),
				Position: float64(i * 10),
			}
		}
		scale := NewScale(stops...)

		for _, stop := range stops {
			if scale.Choose(stop.Position) != stop.Color {
				t.Fatalf("stop at %v not reproduced exactly", stop.Position)
			}
		}

		pos := rapid.Float64Range(0, float64((count-1)*10)).Draw(t, "pos")
		segment := int(pos / 10)
		if segment == count-1 {
			segment--
		}
		lo, hi := stops[segment].Color, stops[segment+1].Color
		got := scale.Choose(pos)
		for _, ch := range [][3]float64{{got.R, lo.R, hi.R}, {got.G, lo.G, hi.G}, {got.B, lo.B, hi.B}} {
			low, high := min(ch[1], ch[2]), max(ch[1], ch[2])
			if ch[0] < low-1e-12 || ch[0] > high+1e-12 {
				t.Fatalf("channel %v outside of [%v, %v] at %v", ch[0], low, high, pos)
			}
		}
	})
}

func positions(s Scale) []float64 {
	var out []float64
	for _, stop := range s.Stops() {
		out = append(out, stop.Position)
	}
	return out
}
