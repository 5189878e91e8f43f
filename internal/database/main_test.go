package database

import (
	"permit-portal/internal/models"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][][]byte
}

func (p *recordingPublisher) PublishEvent(userID string, eventData []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.events == nil {
		p.events = make(map[string][][]byte)
	}
	p.events[userID] = append(p.events[userID], eventData)
}

func createTestUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user, err := s.Users.CreateIfEmailFree(&models.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleHomeowner,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return user
}

func createTestProject(t *testing.T, s *Store, ownerID, city string, status models.ProjectStatus) *models.Project {
	t.Helper()
	now := time.Now().UTC()
	return s.Projects.Create(&models.Project{
		ID:        uuid.NewString(),
		Title:     "Project in " + city,
		Address:   models.Address{City: city},
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func createTestFile(t *testing.T, s *Store, projectID, uploaderID string) *models.File {
	t.Helper()
	return s.Files.Create(&models.File{
		ID:           uuid.NewString(),
		OriginalName: "plan.pdf",
		MimeType:     "application/pdf",
		Size:         1234,
		ProjectID:    projectID,
		UploadedBy:   uploaderID,
		CreatedAt:    time.Now().UTC(),
	})
}
