package scan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

const (
	// hashSampleSize is the number of leading bytes hashed for files
	// larger than the sample. Two large files identical in their first
	// sample but differing later hash equal; a documented approximation.
	hashSampleSize = 1 << 20

	// hashSizeLimit excludes very large files from duplicate detection
	// entirely. Files at or above it are never hashed.
	hashSizeLimit = 100 << 20
)

// hashFile returns the content digest for the file at path.
//
// Files at or below hashSampleSize are hashed over their full contents;
// larger files over their leading hashSampleSize bytes only. Any read
// failure is returned to the caller, which treats the file as unhashable.
func hashFile(path string, size int64) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := xxhash.New()

	if size > hashSampleSize {
		// The file may have shrunk since it was stat'd; hash what is there.
		if _, err := io.CopyN(digest, file, hashSampleSize); err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
	} else {
		if _, err := io.Copy(digest, file); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
