package dates

import (
	"fmt"
	"os"
	"time"
)

// CreationTime returns the instant the entry at path was created, preferring
// true birth time where the filesystem records one. Platforms without birth
// time fall back to the earlier of the metadata-change time and the
// modification time.
func CreationTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return creationTime(info), nil
}
