package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/storage"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

// DefaultPath is used when no data file is configured.
const DefaultPath = "tasks.json"

// FileStore implements storage.Gateway on top of a single flat file.
type FileStore struct {
	filePath string
	codec    storage.Codec
	log      logrus.FieldLogger
}

// NewFileStore creates a FileStore for filePath. The codec follows the file
// extension: .yaml/.yml files are written as YAML, anything else as JSON.
func NewFileStore(filePath string, log logrus.FieldLogger) *FileStore {
	if filePath == "" {
		filePath = DefaultPath
	}
	return &FileStore{
		filePath: filePath,
		codec:    storage.CodecFor(filePath),
		log:      log.WithField("component", "file-store"),
	}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.filePath
}

// Save overwrites the file with the given tasks.
func (f *FileStore) Save(tasks []*models.Task) error {
	if err := f.save(tasks); err != nil {
		f.log.WithError(err).Warn("error saving tasks")
		return err
	}
	f.log.WithField("tasks", len(tasks)).Debug("tasks saved")
	return nil
}

// Load reads the file back into a store.
func (f *FileStore) Load() *task.TaskStore {
	store, err := f.load()
	if err != nil {
		return storage.Recover(f.log, f.filePath, err)
	}
	f.log.WithField("tasks", store.Len()).Debug("tasks loaded")
	return store
}

// Helper functions

func (f *FileStore) save(tasks []*models.Task) error {
	data, err := f.codec.Marshal(storage.NewRecords(tasks))
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if dir := filepath.Dir(f.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(f.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *FileStore) load() (*task.TaskStore, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	records, err := f.codec.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return storage.Seed(records)
}
