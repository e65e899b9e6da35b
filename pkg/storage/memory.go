package storage

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryDisk keeps files in a map. It backs tests and ephemeral dev setups
// where nothing should touch the real filesystem.
type memoryDisk struct {
	mu    sync.RWMutex
	files map[string]memoryFile
	dirs  map[string]struct{}
}

type memoryFile struct {
	content []byte
	modTime time.Time
}

// NewMemoryDisk returns an empty in-memory Disk. Register it with
// RegisterDisk and select it with SetDefault.
func NewMemoryDisk() Disk {
	return &memoryDisk{
		files: map[string]memoryFile{},
		dirs:  map[string]struct{}{},
	}
}

func normalize(path string) string {
	return strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/")
}

// ── Write ─────────────────────────────────────────────────────────────────────

func (d *memoryDisk) Put(path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := make([]byte, len(content))
	copy(cp, content)
	d.files[normalize(path)] = memoryFile{content: cp, modTime: time.Now()}
	return nil
}

func (d *memoryDisk) PutStream(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("storage/memory: read stream for %s: %w", path, err)
	}
	return d.Put(path, data)
}

// ── Read ──────────────────────────────────────────────────────────────────────

func (d *memoryDisk) Get(path string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.files[normalize(path)]
	if !ok {
		return nil, fmt.Errorf("storage/memory: file %s does not exist", path)
	}
	cp := make([]byte, len(f.content))
	copy(cp, f.content)
	return cp, nil
}

func (d *memoryDisk) GetStream(path string) (io.ReadCloser, error) {
	data, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ── Metadata ──────────────────────────────────────────────────────────────────

func (d *memoryDisk) Exists(path string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.files[normalize(path)]
	return ok
}

func (d *memoryDisk) Missing(path string) bool { return !d.Exists(path) }

func (d *memoryDisk) Size(path string) (int64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.files[normalize(path)]
	if !ok {
		return 0, fmt.Errorf("storage/memory: file %s does not exist", path)
	}
	return int64(len(f.content)), nil
}

func (d *memoryDisk) LastModified(path string) (time.Time, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.files[normalize(path)]
	if !ok {
		return time.Time{}, fmt.Errorf("storage/memory: file %s does not exist", path)
	}
	return f.modTime, nil
}

func (d *memoryDisk) URL(path string) string {
	return "memory://" + normalize(path)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func (d *memoryDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, normalize(path))
	return nil
}

// ── Copy / Move ───────────────────────────────────────────────────────────────

func (d *memoryDisk) Copy(src, dst string) error {
	data, err := d.Get(src)
	if err != nil {
		return err
	}
	return d.Put(dst, data)
}

func (d *memoryDisk) Move(src, dst string) error {
	if err := d.Copy(src, dst); err != nil {
		return err
	}
	return d.Delete(src)
}

// ── Directories ───────────────────────────────────────────────────────────────

func (d *memoryDisk) Files(directory string) ([]string, error) {
	dir := normalize(directory)
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for path := range d.files {
		rest, ok := inDirectory(path, dir)
		if ok && !strings.Contains(rest, "/") {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (d *memoryDisk) AllFiles(directory string) ([]string, error) {
	dir := normalize(directory)
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for path := range d.files {
		if _, ok := inDirectory(path, dir); ok {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (d *memoryDisk) Directories(directory string) ([]string, error) {
	dir := normalize(directory)
	d.mu.RLock()
	defer d.mu.RUnlock()
	seen := map[string]struct{}{}
	for path := range d.files {
		rest, ok := inDirectory(path, dir)
		if !ok {
			continue
		}
		if idx := strings.IndexByte(rest, '/'); idx > 0 {
			seen[rest[:idx]] = struct{}{}
		}
	}
	for path := range d.dirs {
		rest, ok := inDirectory(path, dir)
		if ok && rest != "" && !strings.Contains(rest, "/") {
			seen[rest] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (d *memoryDisk) MakeDirectory(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dirs[normalize(path)] = struct{}{}
	return nil
}

func (d *memoryDisk) DeleteDirectory(path string) error {
	dir := normalize(path)
	d.mu.Lock()
	defer d.mu.Unlock()
	for p := range d.files {
		if _, ok := inDirectory(p, dir); ok {
			delete(d.files, p)
		}
	}
	for p := range d.dirs {
		if p == dir {
			delete(d.dirs, p)
			continue
		}
		if _, ok := inDirectory(p, dir); ok {
			delete(d.dirs, p)
		}
	}
	return nil
}

// inDirectory reports whether path sits under dir and returns the remainder
// relative to dir. dir "" means the disk root.
func inDirectory(path, dir string) (string, bool) {
	if dir == "" {
		return path, true
	}
	if !strings.HasPrefix(path, dir+"/") {
		return "", false
	}
	return strings.TrimPrefix(path, dir+"/"), true
}
