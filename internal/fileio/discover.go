package fileio

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FindFiles returns the regular files under directory whose base name
// matches the glob pattern. A missing or non-directory root yields an empty
// slice, never an error, as does any failure during the walk itself.
// Recursive search descends into subdirectories; non-recursive stops at the
// top level.
func FindFiles(directory, pattern string, recursive bool) []string {
	dir, err := ValidatePath(directory)
	if err != nil {
		return []string{}
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return []string{}
	}

	if !recursive {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return []string{}
		}
		files := make([]string, 0, len(matches))
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
				files = append(files, m)
			}
		}
		return files
	}

	files := []string{}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtree: skip it, keep what we have.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		matched, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return []string{}
	}
	return files
}

// FindImages returns every supported source image under directory.
func FindImages(directory string, recursive bool) []string {
	all := FindFiles(directory, "*", recursive)
	images := make([]string, 0, len(all))
	for _, f := range all {
		if IsSupportedImage(f) {
			images = append(images, f)
		}
	}
	return images
}

// FindSatishFiles returns every SATISH container file under directory.
func FindSatishFiles(directory string, recursive bool) []string {
	return FindFiles(directory, "*"+SatishExtension, recursive)
}
