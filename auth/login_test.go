package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alialzoriki7-lab/kado-store/config"
	"github.com/alialzoriki7-lab/kado-store/models"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "ali777",
		AdminPassword: "123ali",
		AdminEmails:   []string{"ali777@kado.ye"},
	}
}

func doLogin(t *testing.T, cfg config.Config, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/login", LoginHandler(cfg))

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]json.RawMessage
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestLoginAdminPair(t *testing.T) {
	cfg := testConfig()
	w, resp := doLogin(t, cfg, LoginRequest{Username: "ali777", Password: "123ali"})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp["user"], &user))
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "admin", user.ID)
	assert.Equal(t, "ali777@kado.ye", user.Email)
}

func TestLoginWrongPasswordIsRegularUser(t *testing.T) {
	cfg := testConfig()
	w, resp := doLogin(t, cfg, LoginRequest{Username: "ali777", Password: "wrong"})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp["user"], &user))
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "admin", user.ID)
}

func TestLoginAnyUsernameAdmitted(t *testing.T) {
	cfg := testConfig()
	w, resp := doLogin(t, cfg, LoginRequest{Username: "sara"})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp["user"], &user))
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "sara", user.Name)
	assert.Equal(t, "sara@user.com", user.Email)
	assert.NotEmpty(t, resp["token"])
}

func TestLoginRequiresUsername(t *testing.T) {
	cfg := testConfig()
	w, _ := doLogin(t, cfg, map[string]string{"password": "123ali"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueTokenClaims(t *testing.T) {
	user := models.User{ID: "u-1", Name: "Sara", Phone: "000", Email: "sara@user.com", IsAdmin: false}
	signed, err := IssueToken(user, "test-secret")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "Sara", claims["name"])
	assert.Equal(t, "sara@user.com", claims["email"])
	assert.Equal(t, false, claims["is_admin"])
	assert.NotNil(t, claims["exp"])
}
