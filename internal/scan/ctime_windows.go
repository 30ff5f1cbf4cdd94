//go:build windows

package scan

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file creation time.
func creationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, stat.CreationTime.Nanoseconds())
	}

	return info.ModTime()
}
