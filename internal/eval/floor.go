package eval

import "golang.org/x/exp/constraints"

// FloorDiv divides a by b rounding the quotient toward negative infinity,
// so FloorDiv(7, 3) == 2 and FloorDiv(-7, 3) == -3. b must not be zero.
func FloorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if r := a % b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}
