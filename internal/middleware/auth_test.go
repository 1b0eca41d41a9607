package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusbuild/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter(policy *authz.Policy, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			if email != "" {
				c.Set("email", email)
			}
		},
		RequireCapability(policy, authz.CapManageOrders),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return r
}

func TestRequireCapability(t *testing.T) {
	policy := authz.New(
		"founder@campusbuild.in",
		map[string][]string{"operations": {"manage_orders"}},
		map[string]string{"ops@campusbuild.in": "operations", "hr@campusbuild.in": "hr"},
	)

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"no identity", "", http.StatusUnauthorized},
		{"capability held", "ops@campusbuild.in", http.StatusOK},
		{"superadmin override", "founder@campusbuild.in", http.StatusOK},
		{"other role denied", "hr@campusbuild.in", http.StatusForbidden},
		{"unknown email denied", "nobody@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			guardedRouter(policy, tc.email).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
