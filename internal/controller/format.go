package controller

import (
	"fmt"
	"io/fs"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals, scaling by 1024 up to TB.
func FormatSize(size int64) string {
	value := float64(size)
	var unit string

	for _, unit = range sizeUnits {
		if value < 1024 || unit == sizeUnits[len(sizeUnits)-1] {
			break
		}

		value /= 1024
	}

	return fmt.Sprintf("%.2f %2s", value, unit)
}

// FormatPermissions renders the nine owner/group/other bits as rwxrwxrwx.
func FormatPermissions(mode fs.FileMode) string {
	const letters = "rwxrwxrwx"

	perm := mode.Perm()
	out := []byte("---------")

	for i := range out {
		if perm&(1<<uint(8-i)) != 0 {
			out[i] = letters[i]
		}
	}

	return string(out)
}
