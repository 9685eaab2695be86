package palette

// Rainbow splits minLength pixels into equally sized segments, one per color. When the colors do not
// divide minLength evenly the result is longer than minLength.
func Rainbow(minLength int, colors []Color) []Color {
	if len(colors) == 0 || minLength <= 0 {
		return nil
	}
	segment := (minLength + len(colors) - 1) / len(colors)

	elements := make([]Color, 0, segment*len(colors))
	for i := 0; i < segment*len(colors); i++ {
		elements = append(elements, colors[i/segment])
	}
	return elements
}

// Gradient blends from one color to another over length pixels, both ends included.
func Gradient(length int, from, to Color) []Color {
	scale := NewScale(
		Stop{Color: from, Position: 0},
		Stop{Color: to, Position: float64(length - 1)},
	)
	return scale.Between(0, length-1)
}
