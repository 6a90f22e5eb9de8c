package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/studieren/blogly/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagLifecycle(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	u, err := s.repos.Users.Create(ctx, repository.UserFields{FirstName: "Jane"})
	require.NoError(t, err)
	p1, err := s.repos.Posts.Create(ctx, u.ID, repository.PostFields{Title: "one", Content: "c"})
	require.NoError(t, err)
	p2, err := s.repos.Posts.Create(ctx, u.ID, repository.PostFields{Title: "two", Content: "c"})
	require.NoError(t, err)

	rr := s.get("/tags/new")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "one")

	rr = s.post("/tags/new", url.Values{"tag_name": {"tech"}, "posts": {fmt.Sprint(p1.ID)}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/tags", rr.Header().Get("Location"))

	rr = s.get("/tags")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "tech")

	tags, err := s.repos.Tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	id := tags[0].ID

	rr = s.get(fmt.Sprintf("/tags/%d", id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>tech</h1>")
	assert.Contains(t, rr.Body.String(), "one")

	rr = s.post("/tags/new", url.Values{"tag_name": {"tech"}})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.get(fmt.Sprintf("/tags/%d/edit", id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `value="tech"`)

	rr = s.post(fmt.Sprintf("/tags/%d/edit", id), url.Values{"tag_name": {"technology"}, "posts": {fmt.Sprint(p2.ID)}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/tags", rr.Header().Get("Location"))

	tag, err := s.repos.Tags.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "technology", tag.Name)
	require.Len(t, tag.Posts, 1)
	assert.Equal(t, p2.ID, tag.Posts[0].ID)

	rr = s.post(fmt.Sprintf("/tags/%d/delete", id), nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/tags", rr.Header().Get("Location"))
	assert.Equal(t, http.StatusNotFound, s.get(fmt.Sprintf("/tags/%d", id)).Code)

	_, err = s.repos.Posts.Get(ctx, p2.ID)
	assert.NoError(t, err)
}

func TestTagFormErrors(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, s.post("/tags/new", url.Values{}).Code)
	assert.Equal(t, http.StatusBadRequest, s.post("/tags/new", url.Values{"tag_name": {"x"}, "posts": {"1.5"}}).Code)
	assert.Equal(t, http.StatusBadRequest, s.post("/tags/new", url.Values{"tag_name": {"x"}, "posts": {"3"}}).Code)
	assert.Equal(t, http.StatusNotFound, s.get("/tags/3").Code)
	assert.Equal(t, http.StatusNotFound, s.post("/tags/3/edit", url.Values{"tag_name": {"x"}}).Code)
	assert.Equal(t, http.StatusNotFound, s.post("/tags/3/delete", nil).Code)
}
