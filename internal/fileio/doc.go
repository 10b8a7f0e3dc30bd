// Package fileio implements the filesystem-facing operations behind the
// SATISH encode, decode, and batch workflows: path validation, existence and
// size queries, safe scoped reads and writes, backups, file discovery, and
// collision-free output naming.
//
// The package is deliberately independent of the format package; it knows
// the container extension as a string constant and nothing else about the
// binary layout.
//
// # Failure Semantics
//
// Filesystem failures are wrapped in *FileOperationError carrying the path,
// the attempted operation, and the underlying cause. Two operations bend the
// fail-fast rule on purpose: FileExists never returns an error (existence is
// advisory and inherently racy, so probe failures degrade to false), and
// BatchOperation isolates per-file failures so one bad file never aborts the
// rest of the batch.
//
// Writes are not atomic across a process crash: WriteFileSafely writes
// directly to the destination with no temp-file-and-rename step. On error
// the caller must not assume any bytes were persisted.
package fileio
