//go:build !linux && !darwin && !windows

package scan

import (
	"os"
	"time"
)

// creationTime falls back to the modification time on platforms without
// a known stat layout.
func creationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
