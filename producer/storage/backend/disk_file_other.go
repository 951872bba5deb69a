//go:build !linux
// +build !linux

package backend

func (df *DiskFile) Sync() error {
	return df.File.Sync()
}

// DropCache is only supported on linux.
func (df *DiskFile) DropCache() error {
	return nil
}
