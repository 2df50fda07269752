package report

import (
	"fmt"

	"github.com/user/webpread/pkg/ports"
)

// Writer writes formatted reports to files.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats the report and writes it to the specified path.
func (w *Writer) Write(path string, r *Report) error {
	content := w.formatter.Format(r)
	if err := w.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
