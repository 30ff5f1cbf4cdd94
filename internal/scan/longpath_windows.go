//go:build windows

package scan

import (
	"path/filepath"
	"strings"
)

// windowsPathLimit is the classic MAX_PATH ceiling.
const windowsPathLimit = 260

// Longpath rewrites paths beyond the MAX_PATH ceiling into the extended
// `\\?\` form so stat, open and list calls do not fail on them. Paths that
// cannot be made absolute are returned unchanged and left for the caller's
// own filesystem call to fail and be reported.
func Longpath(path string) string {
	if len(path) <= windowsPathLimit || strings.HasPrefix(path, `\\?\`) {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return `\\?\` + abs
}
