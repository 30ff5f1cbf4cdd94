//go:build linux

package scan

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the inode change time, the closest Linux analogue
// to a creation timestamp.
func creationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		// Timespec fields are int32 on 32-bit platforms.
		return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec))
	}

	return info.ModTime()
}
