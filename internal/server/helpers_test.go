package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/server"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const adminToken = "admin-secret"

type testServer struct {
	t   *testing.T
	cfg *config.Config
	db  *gorm.DB
	app *fiber.App
}

type response struct {
	Status int
	Header http.Header
	Body   map[string]any
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := dbtest.Config()
	cfg.RateLimitMax = 0
	cfg.AdminToken = adminToken
	cfg.CORSOrigins = "*"
	db := dbtest.New(t, cfg)
	return &testServer{t: t, cfg: cfg, db: db, app: server.New(cfg, db)}
}

// do sends a request; body may be nil, a raw string, or a value to JSON-encode.
func (s *testServer) do(method, path, token string, body any, headers ...string) response {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)

	out := response{Status: resp.StatusCode, Header: resp.Header}
	if len(raw) > 0 {
		require.NoError(s.t, json.Unmarshal(raw, &out.Body), string(raw))
	}
	return out
}

func (r response) data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

func (r response) list() []any {
	l, _ := r.Body["data"].([]any)
	return l
}

func (r response) paging() map[string]any {
	p, _ := r.Body["paging"].(map[string]any)
	return p
}

// createTestUser stores user "test" / "rahasia" already logged in with token "test".
func (s *testServer) createTestUser() *models.User {
	return s.createUser("test", "test")
}

func (s *testServer) createUser(username, token string) *models.User {
	s.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(s.t, err)

	user := models.User{Username: username, Password: string(hash), Name: username, Token: &token}
	require.NoError(s.t, s.db.Create(&user).Error)
	return &user
}

func (s *testServer) getUser(username string) *models.User {
	s.t.Helper()
	var user models.User
	require.NoError(s.t, s.db.Where("username = ?", username).First(&user).Error)
	return &user
}

func (s *testServer) createTestContact(owner *models.User) *models.Contact {
	s.t.Helper()
	contact := models.Contact{
		UserID:    owner.ID,
		FirstName: "test",
		LastName:  "test",
		Email:     "test@hfz.com",
		Phone:     "080900000",
	}
	require.NoError(s.t, s.db.Create(&contact).Error)
	return &contact
}

func (s *testServer) createTestAddress(contact *models.Contact) *models.Address {
	s.t.Helper()
	address := models.Address{
		ContactID:  contact.ID,
		Street:     "Jalan test",
		City:       "Kota test",
		Province:   "Provinsi test",
		Country:    "Indonesia",
		PostalCode: "12345",
	}
	require.NoError(s.t, s.db.Create(&address).Error)
	return &address
}
