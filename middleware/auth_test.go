package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menuswap-api/config"
	"menuswap-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")
	config.TokenTTL = time.Hour

	r := gin.New()
	r.GET("/me", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/admin", AuthRequired(), RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	r := authTestRouter(t)

	token, err := GenerateToken(&models.User{ID: 7, Email: "owner@example.com", Role: models.RoleOwner})
	require.NoError(t, err)

	w := get(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"owner"`)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "not-a-token").Code)
}

func TestTokenIssuerEnforced(t *testing.T) {
	r := authTestRouter(t)

	// A token signed with our secret but minted elsewhere is rejected
	claims := Claims{
		UserID: 7,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", foreign).Code)
}

func TestTokenTTLConfigurable(t *testing.T) {
	r := authTestRouter(t)
	config.TokenTTL = -time.Minute

	expired, err := GenerateToken(&models.User{ID: 7, Role: models.RoleDiner})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", expired).Code)
}

func TestRoleRequired(t *testing.T) {
	r := authTestRouter(t)

	owner, err := GenerateToken(&models.User{ID: 1, Role: models.RoleOwner})
	require.NoError(t, err)
	admin, err := GenerateToken(&models.User{ID: 2, Role: models.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", owner).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)
}
