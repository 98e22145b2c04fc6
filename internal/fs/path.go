package fs

import "path/filepath"

func splitPath(path string) (dir, base string) {
	return filepath.Dir(path), filepath.Base(path)
}
