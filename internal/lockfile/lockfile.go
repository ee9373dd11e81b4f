// Package lockfile provides scoped exclusive file locks and atomic
// whole-file replacement, the two primitives every on-disk write in the
// journal engine is built from.
package lockfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/mesh-intelligence/journal/internal/journalerr"
)

// defaultTimeout is the default wait for acquiring a scoped lock.
const defaultTimeout = 10 * time.Second

// retryDelay is how often TryLockContext polls while waiting.
const retryDelay = 25 * time.Millisecond

// Unlock releases a lock acquired by ScopedLock.
type Unlock func()

// ScopedLock acquires an exclusive advisory lock on path + ".lock",
// creating the lock file if needed. It blocks up to timeout (defaultTimeout
// if timeout <= 0) and returns journalerr.KindLockTimeout on expiry. The
// returned Unlock must be called on every exit path, including error paths
// in the caller above this one; defer it immediately.
func ScopedLock(path string, timeout time.Duration) (Unlock, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "create lock directory", err)
	}

	fl := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ok, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "acquire lock", err)
	}
	if !ok {
		return nil, journalerr.New(journalerr.KindLockTimeout, fmt.Sprintf("timed out locking %s", path))
	}

	return func() { _ = fl.Unlock() }, nil
}

// AtomicReplace writes data to a temp file in the same directory as path,
// fsyncs it, then renames it over path. Rename atomicity is assumed for
// same-filesystem renames, which this guarantees by construction.
func AtomicReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "create directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return journalerr.Wrap(journalerr.KindIoFailure, "write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return journalerr.Wrap(journalerr.KindIoFailure, "sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "close temp file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return journalerr.Wrap(journalerr.KindIoFailure, "rename into place", err)
	}
	return nil
}

// ReadOrEmpty reads path, returning an empty slice (not an error) if it
// does not yet exist.
func ReadOrEmpty(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "read file", err)
	}
	return data, nil
}
