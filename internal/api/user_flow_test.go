package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/socialmedia-api/internal/api/middleware"
	"github.com/phrazzld/socialmedia-api/internal/mocks"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFlowRouter wires the real service over the in-memory stores.
func setupFlowRouter(t *testing.T) http.Handler {
	t.Helper()
	log, _ := logger.NewTestLogger(t)

	users, posts, comments, tx := mocks.NewMockStores()
	svc, err := service.NewUserService(users, posts, comments, tx, log)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	r.Use(middleware.RequestLogger)
	NewUserHandler(svc, log).RegisterRoutes(r)
	return r
}

func TestUserFlow(t *testing.T) {
	h := setupFlowRouter(t)

	w := doRequest(t, h, http.MethodPost, "/social-media/users", `{"name":"Alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/social-media/users/1", w.Header().Get("Location"))

	w = doRequest(t, h, http.MethodPost, "/social-media/users", `{"name":"Alicia","email":"alice@example.com"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email is already registered", decodeError(t, w).Error)

	w = doRequest(t, h, http.MethodPost, "/social-media/users/1/posts", `{"title":"Hello","content":"World"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var post service.PostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, int64(1), post.ID)

	w = doRequest(t, h, http.MethodPost, "/social-media/users/1/1/comment", `{"content":"Nice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var comment service.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	assert.Equal(t, int64(1), comment.ID)

	for _, path := range []string{"/social-media/users/1/comments", "/social-media/posts/1/comments"} {
		w = doRequest(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		var list []service.CommentDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1, path)
		assert.Equal(t, "Nice", list[0].Content)
	}

	w = doRequest(t, h, http.MethodPut, "/social-media/users/1", `{"name":"Alice","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code, "keeping one's own email is allowed")

	w = doRequest(t, h, http.MethodDelete, "/social-media/users/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, h, http.MethodGet, "/social-media/users/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The post outlives its author.
	w = doRequest(t, h, http.MethodGet, "/social-media/posts/1/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserFlow_DistinctNotFound(t *testing.T) {
	h := setupFlowRouter(t)

	w := doRequest(t, h, http.MethodPost, "/social-media/users/1/1/comment", `{"content":"Nice"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Could not find user", decodeError(t, w).Error)

	w = doRequest(t, h, http.MethodPost, "/social-media/users", `{"name":"Alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, h, http.MethodPost, "/social-media/users/1/1/comment", `{"content":"Nice"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decodeError(t, w).Error)

	w = doRequest(t, h, http.MethodGet, "/social-media/users/1/comments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String(), "failed comment must not be persisted")
}
