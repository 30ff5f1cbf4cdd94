//go:build !windows

package scan

// Longpath returns path unchanged on platforms without a short path ceiling.
func Longpath(path string) string {
	return path
}
