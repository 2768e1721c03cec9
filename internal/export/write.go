package export

import (
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so readers see either the old file or the complete new one.
// The temp file is removed on every failure path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (n int, err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, &WriteError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	n, err = tmp.Write(data)
	if err != nil {
		return n, &WriteError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return n, &WriteError{Op: "sync", Path: path, Err: err}
	}
	if err = tmp.Chmod(perm); err != nil {
		return n, &WriteError{Op: "chmod", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return n, &WriteError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return n, &WriteError{Op: "rename", Path: path, Err: err}
	}
	return n, nil
}
