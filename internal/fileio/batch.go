package fileio

import "fmt"

// Operation is a per-file action applied by BatchOperation.
type Operation func(path string) error

// BatchOperation applies op independently to every file, in input order.
// Per-file failures are converted to "path: message" strings and collected;
// successes are collected separately, also in input order. The batch never
// aborts early on a single failure, so a caller can report partial success
// precisely.
func BatchOperation(files []string, op Operation) (successful []string, errors []string) {
	successful = []string{}
	errors = []string{}

	for _, file := range files {
		path, err := ValidatePath(file)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", file, err))
			continue
		}
		if err := op(path); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		successful = append(successful, path)
	}
	return successful, errors
}
