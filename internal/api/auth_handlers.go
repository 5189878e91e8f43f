package api

import (
	"context"
	"errors"
	"net/http"
	"permit-portal/internal/apperror"
	"permit-portal/internal/auth"
	"permit-portal/internal/database"
	"permit-portal/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200" example:"Dana Levi"`
	Email    string `json:"email" validate:"required,email" example:"dana@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"password123"`
	Role     string `json:"role" validate:"omitempty,oneof=homeowner contractor reviewer" example:"homeowner"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"dana@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type UserResponse struct {
	User *models.User `json:"user"`
}

// @Summary      Register a new account
// @Description  Creates a user and returns it together with a 24h access token. Admin accounts cannot be self-registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Account details"
// @Success      201              {object}  AuthResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse "Email already registered"
// @Failure      429              {object}  ErrorResponse
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.writeError(w, r, apperror.Validation("name is required"))
		return
	}

	role := models.RoleHomeowner
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.store.Users.CreateIfEmailFree(&models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			s.writeError(w, r, apperror.Conflict("Email already registered"))
			return
		}
		s.writeError(w, r, err)
		return
	}

	token, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// @Summary      Log in
// @Description  Authenticates with email and password and returns a 24h access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Login Credentials"
// @Success      200           {object}  AuthResponse
// @Failure      400           {object}  ErrorResponse
// @Failure      401           {object}  ErrorResponse "Invalid email or password"
// @Failure      429           {object}  ErrorResponse
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user := s.store.Users.GetByEmail(req.Email)
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.writeError(w, r, apperror.Unauthorized("Invalid email or password"))
		return
	}

	token, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User no longer exists"
// @Router       /auth/me [get]
func (s *Server) GetCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user := s.store.Users.GetByID(p.UserID)
	if user == nil {
		s.writeError(w, r, apperror.NotFound("User not found"))
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

// @Summary      Update current user
// @Description  Partially updates the caller's name, email or password. Role cannot be changed here.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        updateMeRequest  body      UpdateMeRequest  true  "Fields to change"
// @Success      200              {object}  UserResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      401              {object}  ErrorResponse
// @Failure      404              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Router       /auth/me [patch]
func (s *Server) UpdateCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req UpdateMeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Name == nil && req.Email == nil && req.Password == nil {
		s.writeError(w, r, apperror.Validation("No fields to update"))
		return
	}

	params := database.UpdateUserParams{Email: req.Email}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			s.writeError(w, r, apperror.Validation("name cannot be empty"))
			return
		}
		params.Name = &name
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		params.PasswordHash = &hash
	}

	user, err := s.store.Users.Update(p.UserID, params)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			s.writeError(w, r, apperror.Conflict("Email already registered"))
			return
		}
		s.writeError(w, r, err)
		return
	}
	if user == nil {
		s.writeError(w, r, apperror.NotFound("User not found"))
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

// SeedAdmin creates the configured administrator if no user holds that
// email yet. It is a no-op when no admin is configured.
func (s *Server) SeedAdmin(ctx context.Context) error {
	admin := s.config.Admin
	if admin.Email == "" {
		return nil
	}

	if existing := s.store.Users.GetByEmail(admin.Email); existing != nil {
		if existing.Role != models.RoleAdmin {
			s.logger.Warn(ctx, "configured admin email belongs to a non-admin user", "user_id", existing.ID)
		}
		return nil
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	user, err := s.store.Users.CreateIfEmailFree(&models.User{
		ID:           uuid.NewString(),
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "admin account seeded", "user_id", user.ID, "email", user.Email)
	return nil
}
