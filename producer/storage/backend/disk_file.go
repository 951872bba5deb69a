package backend

import (
	"io"

	"github.com/spf13/afero"
)

var (
	_ io.WriteCloser = &DiskFile{}
)

// DiskFile is an output file opened for sequential writing.
type DiskFile struct {
	File         afero.File
	fullFilePath string
	fileSize     int64
}

func NewDiskFile(f afero.File) *DiskFile {
	return &DiskFile{
		fullFilePath: f.Name(),
		File:         f,
	}
}

func (df *DiskFile) Write(p []byte) (n int, err error) {
	n, err = df.File.Write(p)
	df.fileSize += int64(n)
	return
}

func (df *DiskFile) Close() error {
	return df.File.Close()
}

func (df *DiskFile) Name() string {
	return df.fullFilePath
}

// Size is the number of bytes written through this DiskFile.
func (df *DiskFile) Size() int64 {
	return df.fileSize
}

type fileDescriptor interface {
	Fd() uintptr
}
