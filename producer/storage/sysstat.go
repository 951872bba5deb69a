package storage

import (
	"math"
	"math/bits"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
)

// DiskStat stats the current total and free of specified dir
func DiskStat(dir string) (total, free uint64, err error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return 0, 0, err
	}
	stat, err := disk.Usage(absPath)
	if err != nil {
		return 0, 0, err
	}
	return stat.Total, stat.Free, nil
}

// HasFreeSpace compares the bytes a run will write with the free space of the
// directory of its first output file.
func HasFreeSpace(config Config) (enough bool, needed, free uint64, err error) {
	if config.FileCount > 0 && config.FileSize > 0 {
		hi, lo := bits.Mul64(uint64(config.FileCount), uint64(config.FileSize))
		if hi != 0 {
			lo = math.MaxUint64
		}
		needed = lo
	}
	_, free, err = DiskStat(filepath.Dir(config.FileName(0)))
	if err != nil {
		return false, needed, 0, err
	}
	return free >= needed, needed, free, nil
}
