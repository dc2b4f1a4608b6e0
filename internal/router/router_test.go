package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func (stubHandler) ReserveGraves(c *ginext.Context) { c.String(http.StatusOK, "reserve") }
func (stubHandler) ReleaseGrave(c *ginext.Context)  { c.String(http.StatusOK, "release "+c.Param("id")) }
func (stubHandler) ListGraves(c *ginext.Context)    { c.String(http.StatusOK, "list") }
func (stubHandler) GetGrave(c *ginext.Context) {
	c.String(http.StatusOK, "grave "+c.Param("letter")+c.Param("number"))
}
func (stubHandler) GraveStats(c *ginext.Context)   { c.String(http.StatusOK, "stats") }
func (stubHandler) CreateMember(c *ginext.Context) { c.String(http.StatusOK, "create member") }
func (stubHandler) ListMembers(c *ginext.Context)  { c.String(http.StatusOK, "members") }

func TestInitRouter_Routes(t *testing.T) {
	limited := 0
	limit := func(c *ginext.Context) {
		limited++
		c.Next()
	}
	r := InitRouter("test", stubHandler{}, limit)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/graves", "list"},
		{http.MethodGet, "/api/graves/stats", "stats"},
		{http.MethodGet, "/api/graves/C/14", "grave C14"},
		{http.MethodPost, "/api/graves/reserve", "reserve"},
		{http.MethodPost, "/api/graves/release/r1", "release r1"},
		{http.MethodPost, "/api/members", "create member"},
		{http.MethodGet, "/api/members", "members"},
		{http.MethodGet, "/health", `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}

	assert.Equal(t, 2, limited, "only mutating grave routes are rate limited")
}
