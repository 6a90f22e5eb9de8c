package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/repository"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	repos  *repository.Repositories
	tool   *gormtool.CRUDTool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gormtool.Open(gormtool.Options{
		Driver: gormtool.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "blogly.db"),
	})
	require.NoError(t, err)
	require.NoError(t, gormtool.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	tool := gormtool.NewCRUDTool(db, nil, gormtool.NopLogger{})
	repos := repository.New(tool, "")
	return &testServer{
		router: NewRouter(NewHandler(repos, tool), Options{}),
		repos:  repos,
		tool:   tool,
	}
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}
