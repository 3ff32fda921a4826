package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "matching role passes", role: "tutor", wantCode: http.StatusOK},
		{name: "other role rejected", role: "student", wantCode: http.StatusForbidden},
		{name: "missing role rejected", role: "", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/roster", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(CtxUserRoleKey, tt.role)
				}
			}, RequireRole("tutor"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/roster", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
