package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"permit-portal/internal/config"
	"permit-portal/internal/database"
	"permit-portal/internal/logging"
	"permit-portal/internal/models"
	"permit-portal/internal/storage"
	"permit-portal/internal/websocket"
	"testing"

	"github.com/stretchr/testify/require"
)

const testJWTSecret = "api_test_secret"

type testEnv struct {
	server  *Server
	handler http.Handler
	store   *database.Store
	storage *storage.MemoryStorage
	hub     *websocket.Hub
	stopHub context.CancelFunc
}

func testConfig() *config.Config {
	return &config.Config{
		JWT:       config.JWTConfig{Secret: testJWTSecret},
		Upload:    config.UploadConfig{MaxSize: config.DefaultMaxUploadSize},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := testConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := logging.Discard()
	hub := websocket.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	store := database.NewStore(hub)
	memStorage := storage.NewMemoryStorage()
	server := NewServer(cfg, store, memStorage, hub, logger)

	return &testEnv{
		server:  server,
		handler: server.Routes(),
		store:   store,
		storage: memStorage,
		hub:     hub,
		stopHub: cancel,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) register(t *testing.T, name, email string, role models.Role) (string, *models.User) {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     string(role),
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

func (e *testEnv) createProject(t *testing.T, token, title, city string) *models.Project {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/projects", token, CreateProjectRequest{
		Title:   title,
		Address: AddressRequest{Street: "1 Main St", City: city, State: "CA", Zip: "94000"},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp ProjectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Project
}

func (e *testEnv) upload(t *testing.T, token, projectID, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/projects/"+projectID+"/files", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) uploadOK(t *testing.T, token, projectID, filename string, data []byte) *models.File {
	t.Helper()

	rr := e.upload(t, token, projectID, filename, "application/pdf", data)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp FileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.File
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
