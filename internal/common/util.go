package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove password input from memory after it has been handed to the
// account engine.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
