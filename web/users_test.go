package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/studieren/blogly/models"
	"github.com/studieren/blogly/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRedirectsToUsers(t *testing.T) {
	s := newTestServer(t)
	rr := s.get("/")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/users", rr.Header().Get("Location"))
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)

	rr := s.get("/users/new")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "First Name")

	rr = s.post("/users/new", url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Smith"},
		"image_url":  {"www.x.com"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/users", rr.Header().Get("Location"))

	rr = s.get("/users")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Smith")

	users, err := s.repos.Users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	id := users[0].ID
	assert.Equal(t, "www.x.com", users[0].ImageURL)

	rr = s.get(fmt.Sprintf("/users/%d", id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>Jane Smith</h1>")

	rr = s.get(fmt.Sprintf("/users/%d/edit", id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>Edit User</h1>")
	assert.Contains(t, rr.Body.String(), `value="Smith"`)

	rr = s.post(fmt.Sprintf("/users/%d/edit", id), url.Values{
		"first_name": {"John"},
		"last_name":  {"Smith"},
		"image_url":  {""},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/users", rr.Header().Get("Location"))

	user, err := s.repos.Users.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", user.FullName())
	assert.Equal(t, models.DefaultImageURL, user.ImageURL)

	rr = s.post(fmt.Sprintf("/users/%d/delete", id), nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/users", rr.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, s.get(fmt.Sprintf("/users/%d", id)).Code)
}

func TestUserRoutesNotFound(t *testing.T) {
	s := newTestServer(t)
	valid := url.Values{"first_name": {"A"}}

	assert.Equal(t, http.StatusNotFound, s.get("/users/999").Code)
	assert.Equal(t, http.StatusNotFound, s.get("/users/abc").Code)
	assert.Equal(t, http.StatusNotFound, s.get("/users/999/edit").Code)
	assert.Equal(t, http.StatusNotFound, s.post("/users/999/edit", valid).Code)
	assert.Equal(t, http.StatusNotFound, s.post("/users/999/delete", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.get("/users/999/posts/new").Code)
	assert.Equal(t, http.StatusNotFound, s.post("/users/999/posts/new", url.Values{
		"title": {"t"}, "content": {"c"},
	}).Code)
	assert.Equal(t, http.StatusNotFound, s.get("/nowhere").Code)
}

func TestCreateUserRejectsMissingFirstName(t *testing.T) {
	s := newTestServer(t)

	rr := s.post("/users/new", url.Values{"last_name": {"Smith"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rr.Header().Get("Location"))
	assert.Contains(t, rr.Body.String(), "first_name")

	users, err := s.repos.Users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserDetailListsPosts(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	u, err := s.repos.Users.Create(ctx, repository.UserFields{FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)
	_, err = s.repos.Posts.Create(ctx, u.ID, repository.PostFields{Title: "First words", Content: "hi"})
	require.NoError(t, err)

	rr := s.get(fmt.Sprintf("/users/%d", u.ID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "First words")

	rr = s.get("/users")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Recent posts")
	assert.Contains(t, rr.Body.String(), "First words")
}
