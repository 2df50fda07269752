package ports

// FileInfo describes a file as seen by Stat.
type FileInfo struct {
	// Size is the file size in bytes.
	Size int64
	// Regular is true when the path names a regular file
	// (not a directory, device or other special file).
	Regular bool
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// Stat returns information about a file.
	Stat(path string) (FileInfo, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
