package resample

// SetAfterChunk installs f to run after every parallel chunk and returns a
// func restoring the previous hook.
func SetAfterChunk(f func()) (restore func()) {
	prev := afterChunk
	afterChunk = f
	return func() { afterChunk = prev }
}
