package database

import (
	"permit-portal/internal/models"
	"sort"
	"sync"
)

type UpdateFileParams struct {
	OriginalName *string
	MimeType     *string
}

type FileStore struct {
	mu    sync.RWMutex
	files map[string]*models.File
}

func NewFileStore() *FileStore {
	return &FileStore{files: make(map[string]*models.File)}
}

// Create inserts or replaces the file record with the same ID.
func (s *FileStore) Create(file *models.File) *models.File {
	f := *file

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[f.ID] = &f

	out := f
	return &out
}

func (s *FileStore) GetByID(id string) *models.File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	if !ok {
		return nil
	}
	out := *f
	return &out
}

func (s *FileStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[id]
	return ok
}

// Update merges the non-nil fields; nil when the file does not exist.
func (s *FileStore) Update(id string, arg UpdateFileParams) *models.File {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[id]
	if !ok {
		return nil
	}

	updated := *f
	if arg.OriginalName != nil {
		updated.OriginalName = *arg.OriginalName
	}
	if arg.MimeType != nil {
		updated.MimeType = *arg.MimeType
	}
	s.files[id] = &updated

	out := updated
	return &out
}

func (s *FileStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return false
	}
	delete(s.files, id)
	return true
}

func (s *FileStore) List() []models.File {
	return s.collect(func(*models.File) bool { return true })
}

// ListByProject returns exactly the files attached to projectID. Callers
// must not rely on the order.
func (s *FileStore) ListByProject(projectID string) []models.File {
	return s.collect(func(f *models.File) bool { return f.ProjectID == projectID })
}

func (s *FileStore) collect(keep func(*models.File) bool) []models.File {
	s.mu.RLock()
	files := make([]models.File, 0)
	for _, f := range s.files {
		if keep(f) {
			files = append(files, *f)
		}
	}
	s.mu.RUnlock()

	sort.Slice(files, func(i, j int) bool {
		if files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].ID < files[j].ID
		}
		return files[i].CreatedAt.Before(files[j].CreatedAt)
	})
	return files
}

func (s *FileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
