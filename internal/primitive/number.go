package primitive

import "strconv"

// parseFloat converts a validated number lexeme to an IEEE-754 double.
// The lexeme has already matched numberPattern, so the only failure mode
// strconv.ParseFloat could hit is overflow, which it resolves to +/-Inf
// per its documented behavior — acceptable here since spec.md explicitly
// does not require canonicalization beyond the host's double conversion.
func parseFloat(lexeme []byte) float64 {
	f, _ := strconv.ParseFloat(string(lexeme), 64)
	return f
}
