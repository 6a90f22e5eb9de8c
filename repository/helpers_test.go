package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/models"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (*Repositories, *gormtool.CRUDTool) {
	t.Helper()
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
	return New(tool, ""), tool
}

func mustUser(t *testing.T, repos *Repositories, first, last string) *models.User {
	t.Helper()
	u, err := repos.Users.Create(context.Background(), UserFields{FirstName: first, LastName: last})
	require.NoError(t, err)
	return u
}

func mustTag(t *testing.T, repos *Repositories, name string) *models.Tag {
	t.Helper()
	tag, err := repos.Tags.Create(context.Background(), TagFields{Name: name})
	require.NoError(t, err)
	return tag
}

func mustPost(t *testing.T, repos *Repositories, authorID uint, title string, tagIDs ...uint) *models.Post {
	t.Helper()
	p, err := repos.Posts.Create(context.Background(), authorID, PostFields{
		Title:   title,
		Content: "content of " + title,
		TagIDs:  tagIDs,
	})
	require.NoError(t, err)
	return p
}

func tagIDsOf(p *models.Post) []uint {
	ids := make([]uint, 0, len(p.Tags))
	for _, tag := range p.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func countRows(t *testing.T, tool *gormtool.CRUDTool, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, tool.DB.Model(model).Count(&n).Error)
	return n
}
