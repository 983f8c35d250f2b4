package normalize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/filenorm/internal/names"
)

// ResolveConflict returns a destination path that does not collide with an
// existing filesystem entry. The original source path never counts as a
// collision with itself. Collisions are resolved by appending -1, -2, -3, …
// before the extension until an unused candidate appears; there is no upper
// bound on the counter.
//
// The check is check-then-use: another process creating the chosen path
// between this call and the rename surfaces as the rename error, not here.
func ResolveConflict(desired, original string) string {
	if !exists(desired) || filepath.Clean(desired) == filepath.Clean(original) {
		return desired
	}

	dir := filepath.Dir(desired)
	stem, ext := names.SplitExt(filepath.Base(desired))

	candidate := desired
	for counter := 1; exists(candidate); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
	}
	return candidate
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
