// Package jsonstore provides a JSON file-based implementation of TaskRepository.
//
// The file holds a single JSON array of tasks. Every operation reads the
// whole file; every mutating operation rewrites it in full through a
// temporary file that is renamed into place.
package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"syscall"

	"github.com/runoshun/task-cli/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaContent string

const schemaURL = "task-cli://schema/tasks.json"

// defaultFileMode is the permission set of a newly created task file.
const defaultFileMode fs.FileMode = 0o644

// compiledSchema compiles the embedded task file schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, schemaContent)
})

// storeData is the in-memory working copy of the file, keyed by task ID.
type storeData struct {
	Tasks map[int]*domain.Task
}

// maxID returns the largest task ID, or 0 for an empty set.
func (d *storeData) maxID() int {
	maxID := 0
	for id := range d.Tasks {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// sorted returns copies of the tasks matching keep in ascending ID order.
func (d *storeData) sorted(keep func(*domain.Task) bool) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		if keep == nil || keep(t) {
			tasks = append(tasks, t.Clone())
		}
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})
	return tasks
}

// Store implements domain.TaskRepository using a JSON file.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock    domain.Clock
	path     string
	lockPath string
	lock     bool
	validate bool
}

// Option configures a Store.
type Option func(*Store)

// WithLock enables or disables the advisory lock file.
func WithLock(enabled bool) Option {
	return func(s *Store) {
		s.lock = enabled
	}
}

// WithValidation enables or disables schema validation on load.
func WithValidation(enabled bool) Option {
	return func(s *Store) {
		s.validate = enabled
	}
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
// Locking and validation are enabled unless turned off by options.
func New(path string, clock domain.Clock, opts ...Option) *Store {
	s := &Store{
		clock:    clock,
		path:     path,
		lockPath: path + ".lock",
		lock:     true,
		validate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// AddTask creates a TODO task with ID max+1 and returns the ID.
func (s *Store) AddTask(description string) (int, error) {
	return s.AddTaskWithStatus(description, domain.StatusTodo)
}

// AddTaskWithStatus creates a task with ID max+1 and the given status in one write.
func (s *Store) AddTaskWithStatus(description string, status domain.Status) (int, error) {
	if !status.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.maxID() + 1
		task := domain.NewTask(id, description, s.clock.Now())
		task.Status = status
		data.Tasks[id] = task
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateTask replaces the description of a task.
func (s *Store) UpdateTask(id int, description string) error {
	return s.modify(id, func(t *domain.Task) {
		t.SetDescription(description, s.clock.Now())
	})
}

// DeleteTask removes a task by ID.
func (s *Store) DeleteTask(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		if _, ok := data.Tasks[id]; !ok {
			return domain.ErrTaskNotFound
		}
		delete(data.Tasks, id)
		return nil
	})
}

// MarkInProgress sets a task's status to in progress.
func (s *Store) MarkInProgress(id int) error {
	return s.SetStatus(id, domain.StatusInProgress)
}

// MarkDone sets a task's status to done.
func (s *Store) MarkDone(id int) error {
	return s.SetStatus(id, domain.StatusDone)
}

// SetStatus sets a task's status.
func (s *Store) SetStatus(id int, status domain.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	return s.modify(id, func(t *domain.Task) {
		t.SetStatus(status, s.clock.Now())
	})
}

// ListAll returns every task in ascending ID order.
func (s *Store) ListAll() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = data.sorted(nil)
		return nil
	})
	return tasks, err
}

// ListByStatus returns the tasks with the given status in ascending ID order.
func (s *Store) ListByStatus(status domain.Status) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = data.sorted(func(t *domain.Task) bool {
			return t.Status == status
		})
		return nil
	})
	return tasks, err
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if s.IsInitialized() {
		return nil
	}

	return s.withLockWrite(func(*storeData) error {
		return nil
	})
}

// modify applies fn to an existing task and stores the result.
// The file is left untouched when the task does not exist.
func (s *Store) modify(id int, fn func(*domain.Task)) error {
	return s.withLockWrite(func(data *storeData) error {
		task, ok := data.Tasks[id]
		if !ok {
			return domain.ErrTaskNotFound
		}
		fn(task)
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
// Nothing is written if fn returns an error.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if !s.lock {
		return nil, nil
	}

	var (
		lock *os.File
		err  error
	)
	if lockType == syscall.LOCK_SH {
		lock, err = s.openReadLock()
		if lock == nil || err != nil {
			return nil, err
		}
	} else {
		dir := filepath.Dir(s.lockPath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}

		lock, err = os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open lock file: %w", err)
		}
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

// openReadLock opens a file to hold a shared lock on.
// Readers never need write access: an existing lock file is opened read-only,
// and when the lock file cannot be created the task file itself is locked.
// A nil file with a nil error means there is nothing to lock and nothing to read.
func (s *Store) openReadLock() (*os.File, error) {
	lock, err := os.Open(s.lockPath)
	if err == nil {
		return lock, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		if lock, err = os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600); err == nil {
			return lock, nil
		}
	}

	lock, err = os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open task file: %w", err)
	}
	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	if lock == nil {
		return
	}
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the whole file. A missing or empty file is an empty set.
func (s *Store) read() (*storeData, error) {
	data := &storeData{Tasks: make(map[int]*domain.Task)}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return data, nil
	}

	if s.validate {
		if err := validateContent(content); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorruptStore, s.path, err)
		}
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorruptStore, s.path, err)
	}

	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("%w: %s: entry %d is null", domain.ErrCorruptStore, s.path, i)
		}
		if _, dup := data.Tasks[t.ID]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate task ID %d", domain.ErrCorruptStore, s.path, t.ID)
		}
		data.Tasks[t.ID] = t
	}

	return data, nil
}

// write replaces the file with all tasks in ascending ID order.
func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data.sorted(nil), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task data: %w", err)
	}
	content = append(content, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(s.fileMode()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// fileMode returns the permissions of the existing task file, or 0o644 for a new one.
func (s *Store) fileMode() fs.FileMode {
	if fi, err := os.Stat(s.path); err == nil {
		return fi.Mode().Perm()
	}
	return defaultFileMode
}

// validateContent checks raw file content against the embedded schema.
func validateContent(content []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}

	return schema.Validate(doc)
}

// Ensure Store implements TaskRepository and StoreInitializer.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
