package database

import (
	"permit-portal/internal/models"
	"sort"
	"strings"
	"sync"
	"time"
)

type UpdateProjectParams struct {
	Title       *string
	Description *string
	Street      *string
	City        *string
	State       *string
	Zip         *string
	Status      *models.ProjectStatus
}

func (p UpdateProjectParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Street == nil &&
		p.City == nil && p.State == nil && p.Zip == nil && p.Status == nil
}

// ProjectFilter selects projects in List. Zero fields match everything;
// City compares case-insensitively.
type ProjectFilter struct {
	OwnerID string
	Status  models.ProjectStatus
	City    string
}

func (f ProjectFilter) match(p *models.Project) bool {
	if f.OwnerID != "" && p.OwnerID != f.OwnerID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.City != "" && !strings.EqualFold(strings.TrimSpace(p.Address.City), strings.TrimSpace(f.City)) {
		return false
	}
	return true
}

type ProjectStore struct {
	mu       sync.RWMutex
	projects map[string]*models.Project
	now      func() time.Time
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[string]*models.Project),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts or replaces the project with the same ID.
func (s *ProjectStore) Create(project *models.Project) *models.Project {
	p := *project

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[p.ID] = &p

	out := p
	return &out
}

func (s *ProjectStore) GetByID(id string) *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil
	}
	out := *p
	return &out
}

func (s *ProjectStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.projects[id]
	return ok
}

// Update merges the non-nil fields and refreshes UpdatedAt. It returns nil
// when the project does not exist.
func (s *ProjectStore) Update(id string, arg UpdateProjectParams) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil
	}

	updated := *p
	if arg.Title != nil {
		updated.Title = *arg.Title
	}
	if arg.Description != nil {
		updated.Description = *arg.Description
	}
	if arg.Street != nil {
		updated.Address.Street = *arg.Street
	}
	if arg.City != nil {
		updated.Address.City = *arg.City
	}
	if arg.State != nil {
		updated.Address.State = *arg.State
	}
	if arg.Zip != nil {
		updated.Address.Zip = *arg.Zip
	}
	if arg.Status != nil {
		updated.Status = *arg.Status
	}

	now := s.now()
	if !now.After(updated.UpdatedAt) {
		now = updated.UpdatedAt.Add(time.Nanosecond)
	}
	updated.UpdatedAt = now
	s.projects[id] = &updated

	out := updated
	return &out
}

func (s *ProjectStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false
	}
	delete(s.projects, id)
	return true
}

// List returns the projects matching filter, newest first.
func (s *ProjectStore) List(filter ProjectFilter) []models.Project {
	s.mu.RLock()
	projects := make([]models.Project, 0)
	for _, p := range s.projects {
		if filter.match(p) {
			projects = append(projects, *p)
		}
	}
	s.mu.RUnlock()

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID < projects[j].ID
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects
}

func (s *ProjectStore) ListByOwner(ownerID string) []models.Project {
	return s.List(ProjectFilter{OwnerID: ownerID})
}

func (s *ProjectStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}
