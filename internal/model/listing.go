package model

import (
	"io/fs"
	"time"
)

// Entry describes one object of a directory listing.
type Entry struct {
	Name     string
	Path     Path
	Kind     Kind
	Mode     fs.FileMode
	Size     int64
	Modified time.Time
}

// LineMatch is a single line that matched a search pattern.
type LineMatch struct {
	Number  int
	Content string
}

// FileMatches groups the matching lines of one file, in line order.
type FileMatches struct {
	Path  Path
	Lines []LineMatch
}

// ArchiveFormat selects the container written or read by archive commands.
type ArchiveFormat string

const (
	// FormatZip is a zip archive.
	FormatZip ArchiveFormat = "zip"
	// FormatTarGz is a gzip-compressed tar archive.
	FormatTarGz ArchiveFormat = "gztar"
)

// Extension returns the file suffix used for archives of this format.
func (f ArchiveFormat) Extension() string {
	switch f {
	case FormatZip:
		return ".zip"
	case FormatTarGz:
		return ".tar.gz"
	default:
		return ""
	}
}
