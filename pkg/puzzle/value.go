package puzzle

// Value is the content of a cell: Empty or one of the digits One
// through Nine. The zero value is Empty, which sorts below every digit.
type Value uint8

const (
	Empty Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

// ValueOf converts a digit in [1,9] to the corresponding Value.
// Anything else maps to Empty.
func ValueOf(n int) Value {
	if n < 1 || n > 9 {
		return Empty
	}
	return Value(n)
}

// Int returns the numeric digit, or 0 for Empty.
func (v Value) Int() int {
	if v > Nine {
		return 0
	}
	return int(v)
}

func (v Value) String() string {
	if v == Empty || v > Nine {
		return " "
	}
	return string(rune('0') + rune(v))
}

// Values returns the cell values in ascending order, optionally
// preceded by Empty.
func Values(withEmpty bool) []Value {
	vs := make([]Value, 0, 10)
	if withEmpty {
		vs = append(vs, Empty)
	}
	for v := One; v <= Nine; v++ {
		vs = append(vs, v)
	}
	return vs
}
