package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/storage"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

// MemoryStore implements storage.Gateway by keeping the encoded snapshot in
// memory. Nothing outlives the process.
type MemoryStore struct {
	snapshot []byte
	codec    storage.Codec
	log      logrus.FieldLogger
}

// NewMemoryStore creates a MemoryStore with no snapshot yet.
func NewMemoryStore(log logrus.FieldLogger) *MemoryStore {
	return NewMemoryStoreFrom(nil, log)
}

// NewMemoryStoreFrom creates a MemoryStore holding an already encoded JSON snapshot.
func NewMemoryStoreFrom(snapshot []byte, log logrus.FieldLogger) *MemoryStore {
	return &MemoryStore{
		snapshot: snapshot,
		codec:    storage.JSONCodec{},
		log:      log.WithField("component", "memory-store"),
	}
}

// Snapshot returns a copy of the last saved snapshot, or nil before the first save.
func (m *MemoryStore) Snapshot() []byte {
	if m.snapshot == nil {
		return nil
	}
	return append([]byte(nil), m.snapshot...)
}

// Save replaces the held snapshot.
func (m *MemoryStore) Save(tasks []*models.Task) error {
	data, err := m.codec.Marshal(storage.NewRecords(tasks))
	if err != nil {
		err = fmt.Errorf("failed to marshal tasks: %w", err)
		m.log.WithError(err).Warn("error saving tasks")
		return err
	}
	m.snapshot = data
	return nil
}

// Load decodes the held snapshot into a store.
func (m *MemoryStore) Load() *task.TaskStore {
	if m.snapshot == nil {
		return storage.Recover(m.log, "memory snapshot", storage.ErrNoSnapshot)
	}

	records, err := m.codec.Unmarshal(m.snapshot)
	if err != nil {
		return storage.Recover(m.log, "memory snapshot", err)
	}
	store, err := storage.Seed(records)
	if err != nil {
		return storage.Recover(m.log, "memory snapshot", err)
	}
	return store
}
