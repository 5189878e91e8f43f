package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"permit-portal/internal/apperror"
	"permit-portal/internal/auth"
	"permit-portal/internal/database"
	"permit-portal/internal/models"
	"permit-portal/internal/storage"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
)

// multipartOverhead leaves room for boundaries and part headers on top of
// the configured file size limit.
const multipartOverhead = 1 << 20

const (
	mimePDF  = "application/pdf"
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var allowedMimeTypes = map[string]bool{
	mimePDF:  true,
	mimeJPEG: true,
	mimePNG:  true,
	mimeDOCX: true,
	mimeXLSX: true,
}

var mimeByExtension = map[string]string{
	".pdf":  mimePDF,
	".jpg":  mimeJPEG,
	".jpeg": mimeJPEG,
	".png":  mimePNG,
	".docx": mimeDOCX,
	".xlsx": mimeXLSX,
}

type FileResponse struct {
	File *models.File `json:"file"`
}

type FileDetailResponse struct {
	File        *models.File `json:"file"`
	DownloadURL string       `json:"downloadUrl" example:"/api/files/V1StGXR8_Z5jdHi6B-myT/download"`
}

type FileListResponse struct {
	Files []models.File `json:"files"`
	Count int           `json:"count" example:"2"`
}

func (s *Server) generateUniqueID() (string, error) {
	maxRetries := 10

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		if !s.store.Files.Exists(id) && !s.storage.Exists(id) {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

// resolveMimeType returns the accepted content type for an upload, or "" when
// the file is not one of the allowed kinds.
func resolveMimeType(declared, filename string) string {
	mediaType := declared
	if parsed, _, err := mime.ParseMediaType(declared); err == nil {
		mediaType = parsed
	}
	mediaType = strings.ToLower(mediaType)

	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = mimeByExtension[strings.ToLower(filepath.Ext(filename))]
	}
	if !allowedMimeTypes[mediaType] {
		return ""
	}
	return mediaType
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '_'
		default:
			return -1
		}
	}, name)
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "file"
	}
	return cleaned
}

// @Summary      Upload a file to a project
// @Description  Stores a document under a project. Only the project owner or an admin may upload. Accepts PDF, JPEG, PNG, DOCX and XLSX.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Project ID"
// @Param        file  formData  file    true  "File to upload"
// @Success      201   {object}  FileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      413   {object}  ErrorResponse
// @Router       /projects/{id}/files [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
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

	maxSize := s.config.Upload.MaxSize
	tooLarge := apperror.New(apperror.ErrPayloadTooLarge,
		fmt.Sprintf("File exceeds the maximum size of %d bytes", maxSize))

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, tooLarge)
			return
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			s.writeError(w, r, apperror.Validation("No file uploaded"))
			return
		}
		s.writeError(w, r, apperror.Validation("Invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, handler, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, apperror.Validation("No file uploaded"))
		return
	}
	defer file.Close()

	if handler.Size > maxSize {
		s.writeError(w, r, tooLarge)
		return
	}

	mimeType := resolveMimeType(handler.Header.Get("Content-Type"), handler.Filename)
	if mimeType == "" {
		s.writeError(w, r, apperror.Validation("Invalid file type. Allowed types: PDF, JPEG, PNG, DOCX, XLSX"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		s.writeError(w, r, fmt.Errorf("reading upload: %w", err))
		return
	}
	if int64(len(data)) > maxSize {
		s.writeError(w, r, tooLarge)
		return
	}

	originalName := filepath.Base(strings.ReplaceAll(handler.Filename, "\\", "/"))

	var created *models.File
	var ownerID string
	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		project := q.Projects.GetByID(projectID)
		if project == nil {
			return apperror.NotFound("Project not found")
		}
		if !auth.CanUploadFile(p, project) {
			return apperror.Forbidden("You do not have permission to upload files to this project")
		}
		ownerID = project.OwnerID

		fileID, err := s.generateUniqueID()
		if err != nil {
			return err
		}
		filename := fileID + "-" + sanitizeFilename(originalName)

		if err := s.storage.Save(fileID, data, storage.Metadata{
			Filename: originalName,
			MimeType: mimeType,
			Size:     int64(len(data)),
		}); err != nil {
			return fmt.Errorf("saving file content: %w", err)
		}

		created = q.Files.Create(&models.File{
			ID:           fileID,
			Filename:     filename,
			OriginalName: originalName,
			MimeType:     mimeType,
			Size:         int64(len(data)),
			ProjectID:    projectID,
			UploadedBy:   p.UserID,
			Path:         "uploads/" + filename,
			CreatedAt:    time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "file uploaded", "file_id", created.ID, "project_id", projectID, "size", created.Size)
	s.logEvent(r.Context(), database.EventFileUploaded, created, ownerID, p.UserID)
	writeJSON(w, http.StatusCreated, FileResponse{File: created})
}

// @Summary      List project files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  FileListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id}/files [get]
func (s *Server) ListProjectFilesHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	projectID := chi.URLParam(r, "id")
	project := s.store.Projects.GetByID(projectID)
	if project == nil {
		s.writeError(w, r, apperror.NotFound("Project not found"))
		return
	}
	if !auth.CanReadProject(p, project) {
		s.writeError(w, r, apperror.Forbidden("You do not have permission to view this project"))
		return
	}

	files := s.store.Files.ListByProject(projectID)
	if files == nil {
		files = []models.File{}
	}
	writeJSON(w, http.StatusOK, FileListResponse{Files: files, Count: len(files)})
}

// @Summary      Get file metadata
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  FileDetailResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId} [get]
func (s *Server) GetFileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	fileID := chi.URLParam(r, "fileId")
	file := s.store.Files.GetByID(fileID)
	if file == nil {
		s.writeError(w, r, apperror.NotFound("File not found"))
		return
	}
	if !auth.CanReadFile(p, file) {
		s.writeError(w, r, apperror.Forbidden("You do not have permission to view this file"))
		return
	}

	writeJSON(w, http.StatusOK, FileDetailResponse{
		File:        file,
		DownloadURL: "/api/files/" + file.ID + "/download",
	})
}

// @Summary      Download a file
// @Description  Streams the stored bytes of a file as an attachment.
// @Tags         files
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {file}    file
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId}/download [get]
func (s *Server) DownloadFileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	fileID := chi.URLParam(r, "fileId")
	file := s.store.Files.GetByID(fileID)
	if file == nil {
		s.writeError(w, r, apperror.NotFound("File not found"))
		return
	}
	if !auth.CanReadFile(p, file) {
		s.writeError(w, r, apperror.Forbidden("You do not have permission to download this file"))
		return
	}

	obj, err := s.storage.Get(file.ID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.logger.Warn(r.Context(), "file record without stored content", "file_id", file.ID)
			s.writeError(w, r, apperror.NotFound("File content not found"))
			return
		}
		s.writeError(w, r, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.OriginalName})
	if disposition == "" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(obj.Data); err != nil {
		s.logger.Warn(r.Context(), "failed to stream file", "file_id", file.ID, "error", err)
	}
}

// @Summary      Delete a file
// @Description  Removes a file record and its bytes. Allowed for the uploader, the project owner or an admin.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  MessageResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /files/{fileId} [delete]
func (s *Server) DeleteFileHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	fileID := chi.URLParam(r, "fileId")

	var deleted *models.File
	var ownerID string
	err = s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		file := q.Files.GetByID(fileID)
		if file == nil {
			return apperror.NotFound("File not found")
		}
		project := q.Projects.GetByID(file.ProjectID)
		if !auth.CanDeleteFile(p, file, project) {
			return apperror.Forbidden("You do not have permission to delete this file")
		}
		if project != nil {
			ownerID = project.OwnerID
		}
		q.Files.Delete(fileID)
		deleted = file
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if !s.storage.Delete(deleted.ID) {
		s.logger.Warn(r.Context(), "file content already missing on delete", "file_id", deleted.ID)
	}

	s.logEvent(r.Context(), database.EventFileDeleted, map[string]string{
		"id":        deleted.ID,
		"projectId": deleted.ProjectID,
	}, ownerID, p.UserID)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "File deleted successfully"})
}
