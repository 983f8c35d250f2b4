//go:build !darwin && !linux && !windows

package dates

import (
	"io/fs"
	"time"
)

func creationTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
