package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/socialmedia-api/internal/api/shared"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/service"
)

// Path parameter names.
const (
	userIDParam = "userId"
	postIDParam = "postId"
)

// UserHandler handles user, post and comment HTTP requests.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if userService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userService cannot be nil for UserHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// RegisterRoutes mounts the handler's endpoints on r.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/social-media", func(r chi.Router) {
		r.Get("/users", h.ListUsers)
		r.Post("/users", h.CreateUser)
		r.Get("/users/{userId}", h.GetUser)
		r.Put("/users/{userId}", h.UpdateUser)
		r.Delete("/users/{userId}", h.DeleteUser)

		r.Get("/users/{userId}/posts", h.ListPosts)
		r.Post("/users/{userId}/posts", h.CreatePost)

		r.Get("/users/{userId}/comments", h.ListComments)
		r.Post("/users/{userId}/{postId}/comment", h.CreateComment)

		r.Get("/posts/{postId}/comments", h.ListPostComments)
	})
}

// ListUsers handles GET /social-media/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetUser handles GET /social-media/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// CreateUser handles POST /social-media/users
// On success it responds 201 with a Location header naming the new user.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req service.UserInput
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	log.Debug("user created", slog.Int64("user_id", user.ID))
	w.Header().Set("Location", fmt.Sprintf("/social-media/users/%d", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// UpdateUser handles PUT /social-media/users/{userId}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	var req service.UserInput
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /social-media/users/{userId}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	log.Debug("user deleted", slog.Int64("user_id", userID))
	shared.RespondNoContent(w)
}

// ListPosts handles GET /social-media/users/{userId}/posts
func (h *UserHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	posts, err := h.userService.ListPosts(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// CreatePost handles POST /social-media/users/{userId}/posts
func (h *UserHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	var req service.PostInput
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	post, err := h.userService.CreatePost(r.Context(), userID, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// ListComments handles GET /social-media/users/{userId}/comments
func (h *UserHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}

	comments, err := h.userService.ListComments(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// CreateComment handles POST /social-media/users/{userId}/{postId}/comment
func (h *UserHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := handlePathID(w, r, userIDParam, log)
	if !ok {
		return
	}
	postID, ok := handlePathID(w, r, postIDParam, log)
	if !ok {
		return
	}

	var req service.CommentInput
	if !parseAndValidateRequest(w, r, &req, log) {
		return
	}

	comment, err := h.userService.CreateComment(r.Context(), userID, postID, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// ListPostComments handles GET /social-media/posts/{postId}/comments
func (h *UserHandler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	postID, ok := handlePathID(w, r, postIDParam, log)
	if !ok {
		return
	}

	comments, err := h.userService.ListPostComments(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}
