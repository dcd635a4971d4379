package model

// SetEncoder replaces the JSON encoder for testing and returns a restore func
func SetEncoder(f func(v any) ([]byte, error)) func() {
	orig := encodeJSON
	encodeJSON = f
	return func() { encodeJSON = orig }
}
