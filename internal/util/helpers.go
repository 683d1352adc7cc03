package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Cycle returns the element after current in options, wrapping around.
// An unknown current yields the first option.
func Cycle[T comparable](options []T, current T, step int) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	for i, o := range options {
		if o == current {
			n := len(options)
			return options[((i+step)%n+n)%n]
		}
	}
	return options[0]
}
