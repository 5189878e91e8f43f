package api

import (
	"context"
	"net/http"
	"permit-portal/internal/apperror"
	"permit-portal/internal/auth"
	"permit-portal/internal/database"
	"permit-portal/internal/models"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type AddressRequest struct {
	Street string `json:"street" validate:"max=200"`
	City   string `json:"city" validate:"max=100"`
	State  string `json:"state" validate:"max=100"`
	Zip    string `json:"zip" validate:"max=20"`
}

type CreateProjectRequest struct {
	Title       string         `json:"title" validate:"required,max=200" example:"Backyard extension"`
	Description string         `json:"description" validate:"max=5000"`
	Address     AddressRequest `json:"address"`
	Status      string         `json:"status" validate:"omitempty,oneof=draft submitted under_review approved rejected" example:"draft"`
}

type UpdateAddressRequest struct {
	Street *string `json:"street" validate:"omitempty,max=200"`
	City   *string `json:"city" validate:"omitempty,max=100"`
	State  *string `json:"state" validate:"omitempty,max=100"`
	Zip    *string `json:"zip" validate:"omitempty,max=20"`
}

type UpdateProjectRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=200"`
	Description *string               `json:"description" validate:"omitempty,max=5000"`
	Address     *UpdateAddressRequest `json:"address"`
	Status      *string               `json:"status" validate:"omitempty,oneof=draft submitted under_review approved rejected"`
}

type ProjectResponse struct {
	Project *models.Project `json:"project"`
}

type ProjectListResponse struct {
	Items []models.Project `json:"items"`
	Count int              `json:"count" example:"1"`
	Page  int              `json:"page" example:"1"`
	Limit int              `json:"limit" example:"20"`
}

func parsePagination(r *http.Request) (page, limit int, err error) {
	page, limit = 1, defaultPageLimit

	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, apperror.Validation("page must be a positive integer")
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			return 0, 0, apperror.Validation("limit must be a positive integer")
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}
	return page, limit, nil
}

func (s *Server) logEvent(ctx context.Context, eventType string, payload interface{}, userIDs ...string) {
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if err := s.store.Events.LogEvent(ctx, id, eventType, payload); err != nil {
			s.logger.Warn(ctx, "failed to log event", "event_type", eventType, "user_id", id, "error", err)
		}
	}
}

// @Summary      Create a project
// @Description  Creates a permit project owned by the caller. Status defaults to draft.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createProjectRequest  body      CreateProjectRequest  true  "Project"
// @Success      201                   {object}  ProjectResponse
// @Failure      400                   {object}  ErrorResponse
// @Failure      401                   {object}  ErrorResponse
// @Router       /projects [post]
func (s *Server) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req CreateProjectRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		s.writeError(w, r, apperror.Validation("title is required"))
		return
	}

	status := models.StatusDraft
	if req.Status != "" {
		status = models.ProjectStatus(req.Status)
	}

	now := time.Now().UTC()
	project := s.store.Projects.Create(&models.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		Address: models.Address{
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
			Zip:    req.Address.Zip,
		},
		Status:    status,
		OwnerID:   p.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	})

	s.logEvent(r.Context(), database.EventProjectCreated, project, project.OwnerID)
	writeJSON(w, http.StatusCreated, ProjectResponse{Project: project})
}

// @Summary      List projects
// @Description  Lists projects visible to any authenticated caller, newest first. owner=me restricts to the caller's projects.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        status  query     string  false  "Filter by status"
// @Param        city    query     string  false  "Filter by city (case-insensitive)"
// @Param        owner   query     string  false  "'me' or a user ID"
// @Success      200     {object}  ProjectListResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      401     {object}  ErrorResponse
// @Router       /projects [get]
func (s *Server) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := database.ProjectFilter{City: q.Get("city")}
	if status := q.Get("status"); status != "" {
		filter.Status = models.ProjectStatus(status)
		if !filter.Status.Valid() {
			s.writeError(w, r, apperror.Validation("Invalid status filter"))
			return
		}
	}
	switch owner := q.Get("owner"); owner {
	case "":
	case "me":
		filter.OwnerID = p.UserID
	default:
		filter.OwnerID = owner
	}

	projects := s.store.Projects.List(filter)

	start := (page - 1) * limit
	if start > len(projects) {
		start = len(projects)
	}
	end := start + limit
	if end > len(projects) {
		end = len(projects)
	}
	items := projects[start:end]
	if items == nil {
		items = []models.Project{}
	}

	writeJSON(w, http.StatusOK, ProjectListResponse{
		Items: items,
		Count: len(items),
		Page:  page,
		Limit: limit,
	})
}

// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  ProjectResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [get]
func (s *Server) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		s.writeError(w, r, apperror.Validation("Project ID is required"))
		return
	}

	project := s.store.Projects.GetByID(projectID)
	if project == nil {
		s.writeError(w, r, apperror.NotFound("Project not found"))
		return
	}
	if !auth.CanReadProject(p, project) {
		s.writeError(w, r, apperror.Forbidden("You do not have permission to view this project"))
		return
	}

	writeJSON(w, http.StatusOK, ProjectResponse{Project: project})
}

// @Summary      Update a project
// @Description  Partially updates a project. Only the owner or an admin may update it. Any valid status may be set.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id                    path      string                true  "Project ID"
// @Param        updateProjectRequest  body      UpdateProjectRequest  true  "Fields to change"
// @Success      200                   {object}  ProjectResponse
// @Failure      400                   {object}  ErrorResponse
// @Failure      401                   {object}  ErrorResponse
// @Failure      403                   {object}  ErrorResponse
// @Failure      404                   {object}  ErrorResponse
// @Router       /projects/{id} [put]
func (s *Server) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		s.writeError(w, r, apperror.Validation("Project ID is required"))
		return
	}

	var req UpdateProjectRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	params := database.UpdateProjectParams{Description: req.Description}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			s.writeError(w, r, apperror.Validation("title cannot be empty"))
			return
		}
		params.Title = &title
	}
	if req.Address != nil {
		params.Street = req.Address.Street
		params.City = req.Address.City
		params.State = req.Address.State
		params.Zip = req.Address.Zip
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		params.Status = &status
	}
	if params.Empty() {
		s.writeError(w, r, apperror.Validation("No fields to update"))
		return
	}

	var updated *models.Project
	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		project := q.Projects.GetByID(projectID)
		if project == nil {
			return apperror.NotFound("Project not found")
		}
		if !auth.CanModifyProject(p, project) {
			return apperror.Forbidden("You do not have permission to modify this project")
		}
		updated = q.Projects.Update(projectID, params)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logEvent(r.Context(), database.EventProjectUpdated, updated, updated.OwnerID, p.UserID)
	writeJSON(w, http.StatusOK, ProjectResponse{Project: updated})
}

// @Summary      Delete a project
// @Description  Deletes a project together with all of its files. Only the owner or an admin may delete it.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [delete]
func (s *Server) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		s.writeError(w, r, apperror.Validation("Project ID is required"))
		return
	}

	var deleted *models.Project
	var removedFiles []models.File
	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		project := q.Projects.GetByID(projectID)
		if project == nil {
			return apperror.NotFound("Project not found")
		}
		if !auth.CanModifyProject(p, project) {
			return apperror.Forbidden("You do not have permission to delete this project")
		}

		removedFiles = q.Files.ListByProject(projectID)
		for _, f := range removedFiles {
			q.Files.Delete(f.ID)
		}
		q.Projects.Delete(projectID)
		deleted = project
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	for _, f := range removedFiles {
		if !s.storage.Delete(f.ID) {
			s.logger.Warn(r.Context(), "file content missing from storage during project delete", "file_id", f.ID, "project_id", projectID)
		}
	}

	s.logEvent(r.Context(), database.EventProjectDeleted, map[string]interface{}{
		"id":            deleted.ID,
		"deleted_files": len(removedFiles),
	}, deleted.OwnerID, p.UserID)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
