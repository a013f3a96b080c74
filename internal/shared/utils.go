// Package shared holds helpers used by both the server and the client.
package shared

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords read from the terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
