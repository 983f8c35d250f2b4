//go:build linux

package dates

import (
	"io/fs"
	"syscall"
	"time"
)

// Linux does not expose birth time through Stat_t, so the earlier of the
// inode change time and the modification time stands in for it.
func creationTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		ctime := time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
		if ctime.Before(info.ModTime()) {
			return ctime
		}
	}
	return info.ModTime()
}
