package logic

// Ternary is three-valued logic: True, False or Indeterminate.
//
// It is used for query conditions which may be "do not care".
type Ternary int

const (
	Indeterminate Ternary = iota
	True
	False
)

// Applicable returns true unless the Ternary is Indeterminate.
func (t Ternary) Applicable() bool {
	return t != Indeterminate
}

// Bool converts to bool. Indeterminate maps to false.
func (t Ternary) Bool() bool {
	return t == True
}

func TernaryOf(b bool) Ternary {
	if b {
		return True
	}
	return False
}
