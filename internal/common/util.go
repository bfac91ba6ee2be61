package common

// WipeByteArray overwrites b with zeros. It is used to drop passwords read
// from the terminal as soon as they are no longer needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
