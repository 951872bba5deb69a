//go:build linux
// +build linux

package backend

import (
	"golang.org/x/sys/unix"
)

// Using Fdatasync to optimize file sync operation
func (df *DiskFile) Sync() error {
	f, ok := df.File.(fileDescriptor)
	if !ok {
		return df.File.Sync()
	}
	return unix.Fdatasync(int(f.Fd()))
}

// DropCache flushes the written data and advises the kernel to evict the
// file's pages, so a following reader hits the disk instead of the page cache.
func (df *DiskFile) DropCache() error {
	f, ok := df.File.(fileDescriptor)
	if !ok {
		return nil
	}
	if err := unix.Fdatasync(int(f.Fd())); err != nil {
		return err
	}
	return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_DONTNEED)
}
