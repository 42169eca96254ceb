package fs

import (
	"os"
	"time"

	"github.com/otiai10/copy"
)

// Filesystem is the set of primitives the scaffolder is allowed to use.
type Filesystem interface {
	Exists(path string) bool
	CreateDirectory(path string, mode os.FileMode) error
	CopyFile(src, dst string) error
	SetPermissions(path string, mode os.FileMode) error
	Touch(path string) error
}

// OS is the Filesystem backed by the host operating system.
type OS struct{}

var _ Filesystem = OS{}

func (OS) Exists(path string) bool {
	return Exists(path)
}

// CreateDirectory creates path with exactly mode, regardless of the process umask.
// Missing parents are created with PermDirShared so they stay traversable.
func (OS) CreateDirectory(path string, mode os.FileMode) error {
	if err := EnsureDirForFile(path, PermDirShared); err != nil {
		return err
	}
	if err := os.Mkdir(path, mode); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}

func (OS) CopyFile(src, dst string) error {
	return copy.Copy(src, dst, copy.Options{Sync: true})
}

func (OS) SetPermissions(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

// Touch creates an empty file at path, or bumps its modification time if it exists.
func (OS) Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, PermFileShared)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	now := time.Now()
	return os.Chtimes(path, now, now)
}
