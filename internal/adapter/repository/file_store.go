package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"cv-builder/internal/model"
)

// The CV snapshot and the job registry each persist as one JSON
// document. Writes go through a temp file + rename so a crashed save
// never truncates the previous snapshot.

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// CVStore persists the CV snapshot.
type CVStore struct {
	path string
	mu   sync.Mutex
}

func NewCVStore(path string) *CVStore {
	return &CVStore{path: path}
}

// LoadRaw returns the stored snapshot bytes, or an empty object when
// no snapshot has been saved yet. Clients apply their own defaults to
// absent fields.
func (s *CVStore) LoadRaw(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveRaw replaces the stored snapshot with the given payload.
func (s *CVStore) SaveRaw(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFileAtomic(s.path, data)
}

// Load decodes the stored snapshot, tolerating the legacy skill
// shape.
func (s *CVStore) Load(ctx context.Context) (model.Snapshot, error) {
	raw, err := s.LoadRaw(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func (s *CVStore) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return err
	}
	return s.SaveRaw(ctx, data)
}

// EmpleoFileStore persists the job-registry collection as
// {"empleos": [...]}.
type EmpleoFileStore struct {
	path string
	mu   sync.Mutex
}

func NewEmpleoFileStore(path string) *EmpleoFileStore {
	return &EmpleoFileStore{path: path}
}

func (s *EmpleoFileStore) Load(ctx context.Context) ([]model.Empleo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Empleo{}, nil
	}
	if err != nil {
		return nil, err
	}
	var list model.EmpleoList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list.Empleos == nil {
		list.Empleos = []model.Empleo{}
	}
	return list.Empleos, nil
}

// Save replaces the whole collection; there is no partial update.
func (s *EmpleoFileStore) Save(ctx context.Context, empleos []model.Empleo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if empleos == nil {
		empleos = []model.Empleo{}
	}
	data, err := json.MarshalIndent(model.EmpleoList{Empleos: empleos}, "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
