package auth

import (
	"permit-portal/internal/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectPolicy(t *testing.T) {
	project := &models.Project{ID: "p1", OwnerID: "owner"}

	owner := Principal{UserID: "owner", Role: models.RoleHomeowner}
	admin := Principal{UserID: "root", Role: models.RoleAdmin}
	reviewer := Principal{UserID: "rev", Role: models.RoleReviewer}
	stranger := Principal{UserID: "other", Role: models.RoleContractor}

	require.True(t, CanModifyProject(owner, project))
	require.True(t, CanModifyProject(admin, project))
	require.False(t, CanModifyProject(reviewer, project))
	require.False(t, CanModifyProject(stranger, project))

	require.True(t, CanUploadFile(owner, project))
	require.True(t, CanUploadFile(admin, project))
	require.False(t, CanUploadFile(stranger, project))

	for _, p := range []Principal{owner, admin, reviewer, stranger} {
		require.True(t, CanReadProject(p, project))
	}
	require.False(t, CanReadProject(Principal{}, project))
}

func TestCanDeleteFile(t *testing.T) {
	project := &models.Project{ID: "p1", OwnerID: "owner"}
	file := &models.File{ID: "f1", ProjectID: "p1", UploadedBy: "uploader"}

	tests := []struct {
		name    string
		p       Principal
		project *models.Project
		want    bool
	}{
		{"uploader", Principal{UserID: "uploader", Role: models.RoleContractor}, project, true},
		{"project owner", Principal{UserID: "owner", Role: models.RoleHomeowner}, project, true},
		{"admin", Principal{UserID: "root", Role: models.RoleAdmin}, project, true},
		{"stranger", Principal{UserID: "other", Role: models.RoleHomeowner}, project, false},
		{"reviewer", Principal{UserID: "rev", Role: models.RoleReviewer}, project, false},
		{"owner of missing project", Principal{UserID: "owner", Role: models.RoleHomeowner}, nil, false},
		{"uploader of missing project", Principal{UserID: "uploader", Role: models.RoleContractor}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanDeleteFile(tc.p, file, tc.project))
		})
	}
}
