package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RecordPattern matches record files in a servers directory.
const RecordPattern = "*.yaml"

// ServersDirName is the conventional directory holding record files.
const ServersDirName = "servers"

var (
	// ErrFileNotFound is returned when a single target does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrDirNotFound is returned when the servers directory does not exist.
	ErrDirNotFound = errors.New("servers directory not found")
)

// Plan is the resolved set of record files for one run.
type Plan struct {
	Mode   Mode
	Target string
	Files  []string
}

// PlanFile resolves single-file mode. Any existing path is accepted; a
// directory fails later as an unreadable record.
func PlanFile(path string) (Plan, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Plan{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Plan{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Plan{Mode: ModeSingle, Target: path, Files: []string{path}}, nil
}

// PlanDir resolves batch mode over every record file in dir, sorted by name.
func PlanDir(dir string) (Plan, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Plan{}, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return Plan{}, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Plan{}, fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}
	files, err := filepath.Glob(filepath.Join(dir, RecordPattern))
	if err != nil {
		return Plan{}, fmt.Errorf("list records: %w", err)
	}
	sort.Strings(files)
	return Plan{Mode: ModeBatch, Target: dir, Files: files}, nil
}

// DefaultServersDir returns the servers directory that sits beside the
// directory holding the running executable.
func DefaultServersDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return ServersDirFor(exe), nil
}

// ServersDirFor returns the servers directory for a program path.
func ServersDirFor(programPath string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(programPath)), ServersDirName)
}
