package common

// WipeByteArray overwrites b with zeroes. Used for passwords read from the
// terminal once they have been handed to the transport.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
