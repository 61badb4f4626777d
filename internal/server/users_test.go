package server_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/api/users", "", map[string]string{
		"username": "test",
		"password": "rahasia",
		"name":     "test",
	})

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "test", res.data()["username"])
	assert.Equal(t, "test", res.data()["name"])
	assert.NotContains(t, res.data(), "password")
}

func TestRegister_InvalidRequest(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/api/users", "", map[string]string{"username": "", "password": "", "name": ""})

	require.Equal(t, 400, res.Status)
	errs, ok := res.Body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 3)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := newTestServer(t)
	body := map[string]string{"username": "test", "password": "rahasia", "name": "test"}

	first := s.do("POST", "/api/users", "", body)
	require.Equal(t, 200, first.Status)

	second := s.do("POST", "/api/users", "", body)
	assert.Equal(t, 400, second.Status)
	assert.Equal(t, "Username already exists", second.Body["errors"])
}

func TestRegister_PasswordTooLongForBcrypt(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/api/users", "", map[string]string{
		"username": "test",
		"password": strings.Repeat("a", 80),
		"name":     "test",
	})

	assert.Equal(t, 400, res.Status)
	assert.Equal(t, []any{"password must be at most 72 bytes"}, res.Body["errors"])

	var count int64
	require.NoError(t, s.db.Table("users").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegister_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/api/users", "", `{"username":`)

	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "Invalid request body", res.Body["errors"])
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("POST", "/api/users/login", "", map[string]string{"username": "test", "password": "rahasia"})

	require.Equal(t, 200, res.Status)
	token, _ := res.data()["token"].(string)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "test", token)

	stored := s.getUser("test")
	require.NotNil(t, stored.Token)
	assert.Equal(t, token, *stored.Token)

	current := s.do("GET", "/api/users/current", token, nil)
	assert.Equal(t, 200, current.Status)
}

func TestLogin_InvalidRequest(t *testing.T) {
	s := newTestServer(t)

	res := s.do("POST", "/api/users/login", "", map[string]string{"username": "", "password": ""})

	assert.Equal(t, 400, res.Status)
	assert.NotEmpty(t, res.Body["errors"])
}

func TestLogin_WrongPasswordAndWrongUsernameMatch(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	wrongPassword := s.do("POST", "/api/users/login", "", map[string]string{"username": "test", "password": "salah"})
	wrongUsername := s.do("POST", "/api/users/login", "", map[string]string{"username": "salah", "password": "salah"})

	assert.Equal(t, 401, wrongPassword.Status)
	assert.Equal(t, 401, wrongUsername.Status)
	assert.NotEmpty(t, wrongPassword.Body["errors"])
	assert.Equal(t, wrongPassword.Body, wrongUsername.Body)
}

func TestGetCurrentUser(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("GET", "/api/users/current", "test", nil)

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "test", res.data()["username"])
	assert.Equal(t, "test", res.data()["name"])
}

func TestGetCurrentUser_InvalidToken(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	for _, token := range []string{"salah", "", "Bearer test"} {
		res := s.do("GET", "/api/users/current", token, nil)
		assert.Equal(t, 401, res.Status, token)
		assert.Equal(t, "Unauthorized", res.Body["errors"], token)
	}
}

func TestUpdateCurrentUser(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "test", map[string]string{
		"name":     "Nera",
		"password": "rahasialagi",
	})

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "test", res.data()["username"])
	assert.Equal(t, "Nera", res.data()["name"])

	user := s.getUser("test")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasialagi")))
}

func TestUpdateCurrentUser_NameOnly(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "test", map[string]string{"name": "Nera"})

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Nera", res.data()["name"])

	user := s.getUser("test")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia")))
}

func TestUpdateCurrentUser_PasswordOnly(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "test", map[string]string{"password": "rahasialagi"})

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "test", res.data()["name"])

	user := s.getUser("test")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasialagi")))
}

func TestUpdateCurrentUser_InvalidFields(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "test", map[string]string{"name": " ", "password": ""})

	assert.Equal(t, 400, res.Status)
	errs, _ := res.Body["errors"].([]any)
	assert.Len(t, errs, 2)
}

func TestUpdateCurrentUser_PasswordTooLongForBcrypt(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "test", map[string]string{"password": strings.Repeat("a", 80)})

	assert.Equal(t, 400, res.Status)
	assert.Equal(t, []any{"password must be at most 72 bytes"}, res.Body["errors"])

	user := s.getUser("test")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia")))
}

func TestUpdateCurrentUser_UnauthorizedBeforeValidation(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("PATCH", "/api/users/current", "salah", map[string]string{"name": ""})

	assert.Equal(t, 401, res.Status)
	assert.Equal(t, "Unauthorized", res.Body["errors"])
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("DELETE", "/api/users/logout", "test", nil)

	require.Equal(t, 200, res.Status)
	assert.Equal(t, "OK", res.Body["data"])
	assert.Nil(t, s.getUser("test").Token)

	again := s.do("DELETE", "/api/users/logout", "test", nil)
	assert.Equal(t, 401, again.Status)
}

func TestLogout_InvalidToken(t *testing.T) {
	s := newTestServer(t)
	s.createTestUser()

	res := s.do("DELETE", "/api/users/logout", "salah", nil)

	assert.Equal(t, 401, res.Status)
}
