package database

import (
	"context"
	"errors"
	"permit-portal/internal/models"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecTx_PropagatesError(t *testing.T) {
	s := NewStore(nil)
	sentinel := errors.New("stop")

	err := s.ExecTx(context.Background(), func(q *Queries) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestExecTx_CancelledContext(t *testing.T) {
	s := NewStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.ExecTx(ctx, func(q *Queries) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, called)
}

// Concurrent "create file if project exists" and "delete project with its
// files" must never leave a file whose project is gone.
func TestExecTx_NoOrphanedFiles(t *testing.T) {
	s := NewStore(nil)
	project := createTestProject(t, s, "owner", "Haifa", models.StatusDraft)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.ExecTx(context.Background(), func(q *Queries) error {
				if !q.Projects.Exists(project.ID) {
					return nil
				}
				createTestFile(t, s, project.ID, "owner")
				return nil
			})
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.ExecTx(context.Background(), func(q *Queries) error {
			for _, f := range q.Files.ListByProject(project.ID) {
				q.Files.Delete(f.ID)
			}
			q.Projects.Delete(project.ID)
			return nil
		})
	}()
	wg.Wait()

	require.False(t, s.Projects.Exists(project.ID))
	require.Empty(t, s.Files.ListByProject(project.ID))
}
