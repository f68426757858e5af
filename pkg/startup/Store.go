package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetci/fleetci/pkg/configuration"
)

// File is the durable configuration store backed by a single YAML file.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (file *File) SetPath(path string) {
	file.path = path
}

func (file *File) Path() string {
	abs, err := filepath.Abs(file.path)

	if err != nil {
		return file.path
	}

	return abs
}

func (file *File) Load() (*configuration.Configuration, error) {
	handle, err := os.Open(file.path)

	if err != nil {
		return nil, err
	}

	defer func() {
		handle.Close()
	}()

	return Load(handle)
}

// RewriteBaseImage replaces the value of every base_image line in place.
// The rewrite is line-oriented: all other lines are written back verbatim,
// and the indentation of the rewritten line is preserved.
func (file *File) RewriteBaseImage(newImage string) error {
	raw, err := os.ReadFile(file.path)

	if err != nil {
		return err
	}

	lines := strings.Split(string(raw), "\n")

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "base_image:") {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = fmt.Sprintf("%sbase_image: %s", indent, newImage)
		}
	}

	return os.WriteFile(file.path, []byte(strings.Join(lines, "\n")), 0644)
}
