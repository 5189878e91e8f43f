package auth

import "permit-portal/internal/models"

// Principal is the verified identity attached to a request.
type Principal struct {
	UserID string
	Role   models.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// CanModifyProject covers both update and delete.
func CanModifyProject(p Principal, project *models.Project) bool {
	return p.IsAdmin() || p.UserID == project.OwnerID
}

// CanUploadFile is checked against the target project before the file exists.
func CanUploadFile(p Principal, project *models.Project) bool {
	return p.IsAdmin() || p.UserID == project.OwnerID
}

// CanDeleteFile allows the uploader, the owner of the file's project and
// admins. project may be nil if it is already gone.
func CanDeleteFile(p Principal, file *models.File, project *models.Project) bool {
	if p.IsAdmin() || p.UserID == file.UploadedBy {
		return true
	}
	return project != nil && p.UserID == project.OwnerID
}

// Reads are open to every authenticated caller.
func CanReadProject(p Principal, _ *models.Project) bool { return p.UserID != "" }

func CanReadFile(p Principal, _ *models.File) bool { return p.UserID != "" }
