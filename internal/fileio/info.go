package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo describes a file on disk at the moment Stat was called. Values
// are computed on demand and never cached; the caller owns the result.
type FileInfo struct {
	Name         string    `json:"name"`
	Stem         string    `json:"stem"`
	Suffix       string    `json:"suffix"`
	Size         int64     `json:"size"`
	SizeHuman    string    `json:"size_human"`
	Modified     time.Time `json:"modified"`
	IsImage      bool      `json:"is_image"`
	IsSatish     bool      `json:"is_satish"`
	AbsolutePath string    `json:"absolute_path"`
	Parent       string    `json:"parent"`
}

// Stat returns comprehensive information about the file at path. Missing
// files and stat failures are wrapped in *FileOperationError.
func Stat(path string) (*FileInfo, error) {
	p, err := ValidatePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, opError("stat", p, os.ErrNotExist)
		}
		return nil, opError("stat", p, err)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, opError("resolve", p, err)
	}

	name := filepath.Base(p)
	ext := filepath.Ext(name)
	return &FileInfo{
		Name:         name,
		Stem:         strings.TrimSuffix(name, ext),
		Suffix:       ext,
		Size:         info.Size(),
		SizeHuman:    FormatFileSize(info.Size()),
		Modified:     info.ModTime(),
		IsImage:      IsSupportedImage(p),
		IsSatish:     IsSatishFile(p),
		AbsolutePath: abs,
		Parent:       filepath.Dir(abs),
	}, nil
}

// FormatFileSize renders a byte count in human-readable form ("0 B",
// "1.5 KB", "2.0 MB", ...).
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)
	i := 0
	for value >= 1024.0 && i < len(units)-1 {
		value /= 1024.0
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}
