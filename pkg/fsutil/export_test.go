package fsutil

// SetHomeDir replaces the home directory lookup and returns a restore function.
func SetHomeDir(fn func() (string, error)) func() {
	previous := homeDir
	homeDir = fn

	return func() { homeDir = previous }
}
