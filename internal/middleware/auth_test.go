package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"incentivehub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestRouter(allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuth(testSecret)
	router := gin.New()
	router.GET("/protected", auth.RequireRole(allowed...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": SubjectID(c), "role": SubjectRole(c)})
	})
	return router
}

func TestRequireRole(t *testing.T) {
	router := newTestRouter(model.RoleAdmin)
	adminToken := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "role": model.RoleAdmin})
	sellerToken := signToken(t, testSecret, jwt.MapClaims{"sub": "u2", "role": model.RoleSeller})
	forgedToken := signToken(t, []byte("other-secret"), jwt.MapClaims{"sub": "u3", "role": model.RoleAdmin})

	tests := []struct {
		name       string
		authorize  func(r *http.Request)
		wantStatus int
	}{
		{"bearer admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminToken) }, http.StatusOK},
		{"cookie admin", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: adminToken}) }, http.StatusOK},
		{"wrong role", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+sellerToken) }, http.StatusForbidden},
		{"forged signature", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+forgedToken) }, http.StatusUnauthorized},
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", adminToken) }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			tt.authorize(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleSetsSubject(t *testing.T) {
	router := newTestRouter(model.RoleSeller, model.RoleAdmin)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u7", "role": model.RoleSeller})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if body != `{"id":"u7","role":"seller"}` {
		t.Errorf("body = %s", body)
	}
}
