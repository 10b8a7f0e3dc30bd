package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SatishExtension is the canonical container file extension.
const SatishExtension = ".satish"

// supportedImageExtensions are the source raster formats accepted for
// encoding, matched case-insensitively.
var supportedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// invalidFilenameChars are stripped by GetSafeFilename. They cover the
// characters rejected by at least one common filesystem.
const invalidFilenameChars = `<>:"/\|?*`

// FileOperationError reports a failed filesystem operation. It carries the
// offending path, the operation that failed, and the underlying cause when
// one exists.
type FileOperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOperationError) Error() string {
	msg := "cannot " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FileOperationError) Unwrap() error {
	return e.Err
}

func opError(op, path string, err error) *FileOperationError {
	return &FileOperationError{Op: op, Path: path, Err: err}
}

// ValidatePath normalizes a path string. It fails with *FileOperationError
// for input that cannot represent a path at all (the empty string); it does
// not check existence.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", opError("use empty string as path", "", nil)
	}
	return filepath.Clean(path), nil
}

// EnsureDirectoryExists creates the directory at path, including parents.
// If path names an existing regular file, its parent directory is ensured
// instead. Existing directories are not an error.
func EnsureDirectoryExists(path string) error {
	dir, err := ValidatePath(path)
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return opError("create directory", dir, err)
	}
	return nil
}

// IsSupportedImage reports whether the path has a supported source image
// extension. Classification is purely by extension; no I/O happens.
func IsSupportedImage(path string) bool {
	return supportedImageExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsSatishFile reports whether the path has the container extension.
func IsSatishFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == SatishExtension
}

// FileExists reports whether path names an existing regular file. It never
// returns an error: existence is advisory by nature, so any stat failure
// (missing file, permission denial, malformed path) degrades to false.
func FileExists(path string) bool {
	p, err := ValidatePath(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// GetFileSize returns the size of the file at path in bytes. Missing files
// and stat-level failures are wrapped in *FileOperationError.
func GetFileSize(path string) (int64, error) {
	p, err := ValidatePath(path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, opError("get size of", p, os.ErrNotExist)
		}
		return 0, opError("get size of", p, err)
	}
	return info.Size(), nil
}

// GetSafeFilename strips characters invalid across common filesystems,
// trims leading and trailing dots and spaces, and falls back to "untitled"
// when nothing survives. The result is never empty and never contains a
// character from the forbidden set.
func GetSafeFilename(name string) string {
	safe := name
	for _, c := range invalidFilenameChars {
		safe = strings.ReplaceAll(safe, string(c), "_")
	}
	safe = strings.Trim(safe, ". ")
	if safe == "" {
		return "untitled"
	}
	return safe
}

// GenerateOutputPath derives an output path from the input's base name:
// sanitized stem plus newExtension, rooted under outputDir when given
// (creating it if necessary) or the input's own directory otherwise.
func GenerateOutputPath(inputPath, outputDir, newExtension string) (string, error) {
	input, err := ValidatePath(inputPath)
	if err != nil {
		return "", err
	}

	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	safe := GetSafeFilename(stem)

	dir := filepath.Dir(input)
	if outputDir != "" {
		if dir, err = ValidatePath(outputDir); err != nil {
			return "", err
		}
		if err := EnsureDirectoryExists(dir); err != nil {
			return "", err
		}
	}

	return filepath.Join(dir, safe+newExtension), nil
}

// BackupFile copies the file at path byte-for-byte to path+suffix and
// returns the backup path. An empty suffix selects the default ".backup".
// The source must exist; copy failures are wrapped and the partial backup
// is removed rather than reported as successful.
func BackupFile(path, suffix string) (string, error) {
	p, err := ValidatePath(path)
	if err != nil {
		return "", err
	}
	if suffix == "" {
		suffix = ".backup"
	}
	if !FileExists(p) {
		return "", opError("back up non-existent file", p, os.ErrNotExist)
	}

	backupPath := p + suffix
	if err := copyFile(p, backupPath); err != nil {
		os.Remove(backupPath)
		return "", opError("create backup of", p, err)
	}
	return backupPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// GetAvailableFilename returns path unchanged if nothing exists there,
// otherwise the first of base_1.ext, base_2.ext, ... that is unused. It
// guarantees this call alone never selects a path that would overwrite an
// existing file; overwriting has to be an explicit decision elsewhere.
func GetAvailableFilename(path string) string {
	p, err := ValidatePath(path)
	if err != nil {
		return path
	}
	if _, err := os.Stat(p); err != nil {
		return p
	}

	ext := filepath.Ext(p)
	stem := strings.TrimSuffix(filepath.Base(p), ext)
	dir := filepath.Dir(p)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// ReadFileSafely reads the entire file at path. The file handle is acquired
// and released within this call on every exit path. Missing or unreadable
// files are wrapped in *FileOperationError.
func ReadFileSafely(path string) ([]byte, error) {
	p, err := ValidatePath(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return nil, opError("read file", p, os.ErrNotExist)
		}
		return nil, opError("read file", p, err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, opError("read file", p, err)
	}
	return data, nil
}

// WriteFileSafely writes data to path, creating the destination directory
// first if needed. The handle is released on every exit path. The write is
// not crash-atomic: there is no temp-file-and-rename step, so a crash
// mid-write can leave a truncated file at the destination.
func WriteFileSafely(path string, data []byte) error {
	p, err := ValidatePath(path)
	if err != nil {
		return err
	}
	if err := EnsureDirectoryExists(filepath.Dir(p)); err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return opError("write file", p, err)
	}
	return nil
}
