package scaffold

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
)

type memFile struct {
	data []byte
	mode os.FileMode
}

// memFS is an in-memory fs.Filesystem. Errors are injected per "op path" key:
// fail always fails, flaky fails the given number of times first.
type memFS struct {
	dirs  map[string]os.FileMode
	files map[string]memFile
	fail  map[string]error
	flaky map[string]int
	calls map[string]int
}

var _ fs.Filesystem = (*memFS)(nil)

func newMemFS() *memFS {
	return &memFS{
		dirs:  map[string]os.FileMode{"/": 0o755},
		files: map[string]memFile{},
		fail:  map[string]error{},
		flaky: map[string]int{},
		calls: map[string]int{},
	}
}

func (m *memFS) injected(op, path string) error {
	key := op + " " + path
	m.calls[key]++
	if err, ok := m.fail[key]; ok {
		return err
	}
	if m.flaky[key] > 0 {
		m.flaky[key]--
		return &os.PathError{Op: op, Path: path, Err: errBusy}
	}
	return nil
}

type busyError struct{}

func (busyError) Error() string { return "device or resource busy" }

var errBusy error = busyError{}

func denied(op, path string) error {
	return &os.PathError{Op: op, Path: path, Err: os.ErrPermission}
}

func (m *memFS) mkdirAll(path string) {
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := m.dirs[p]; ok {
			return
		}
		m.dirs[p] = 0o755
	}
}

func (m *memFS) Exists(path string) bool {
	_, isDir := m.dirs[path]
	_, isFile := m.files[path]
	return isDir || isFile
}

func (m *memFS) CreateDirectory(path string, mode os.FileMode) error {
	if err := m.injected(OpMkdir, path); err != nil {
		return err
	}
	if m.Exists(path) {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	m.mkdirAll(filepath.Dir(path))
	m.dirs[path] = mode
	return nil
}

func (m *memFS) CopyFile(src, dst string) error {
	if err := m.injected(OpCopy, dst); err != nil {
		return err
	}
	f, ok := m.files[src]
	if !ok {
		return &os.PathError{Op: "open", Path: src, Err: os.ErrNotExist}
	}
	if _, ok := m.dirs[filepath.Dir(dst)]; !ok {
		return &os.PathError{Op: "open", Path: dst, Err: os.ErrNotExist}
	}
	m.files[dst] = memFile{data: append([]byte(nil), f.data...), mode: f.mode}
	return nil
}

func (m *memFS) SetPermissions(path string, mode os.FileMode) error {
	if err := m.injected(OpChmod, path); err != nil {
		return err
	}
	if _, ok := m.dirs[path]; ok {
		m.dirs[path] = mode
		return nil
	}
	if f, ok := m.files[path]; ok {
		f.mode = mode
		m.files[path] = f
		return nil
	}
	return &os.PathError{Op: "chmod", Path: path, Err: os.ErrNotExist}
}

func (m *memFS) Touch(path string) error {
	if err := m.injected(OpTouch, path); err != nil {
		return err
	}
	if _, ok := m.dirs[filepath.Dir(path)]; !ok {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	if _, ok := m.files[path]; !ok {
		m.files[path] = memFile{mode: 0o644}
	}
	return nil
}

func (m *memFS) writeFile(path, contents string, mode os.FileMode) {
	m.mkdirAll(filepath.Dir(path))
	m.files[path] = memFile{data: []byte(contents), mode: mode}
}

func (m *memFS) mode(path string) os.FileMode {
	if mode, ok := m.dirs[path]; ok {
		return mode
	}
	return m.files[path].mode
}

func (m *memFS) contents(path string) string {
	return string(m.files[path].data)
}

// children lists the direct entries of dir.
func (m *memFS) children(dir string) []string {
	var names []string
	for p := range m.dirs {
		if p != dir && filepath.Dir(p) == dir {
			names = append(names, filepath.Base(p))
		}
	}
	for p := range m.files {
		if filepath.Dir(p) == dir {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

type snapshot struct {
	dirs  map[string]os.FileMode
	files map[string]memFile
}

func (m *memFS) snapshot() snapshot {
	s := snapshot{dirs: map[string]os.FileMode{}, files: map[string]memFile{}}
	for k, v := range m.dirs {
		s.dirs[k] = v
	}
	for k, v := range m.files {
		s.files[k] = memFile{data: append([]byte(nil), v.data...), mode: v.mode}
	}
	return s
}
