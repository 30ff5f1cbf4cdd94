//go:build darwin

package scan

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file's birth time.
func creationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(stat.Birthtimespec.Sec), int64(stat.Birthtimespec.Nsec))
	}

	return info.ModTime()
}
