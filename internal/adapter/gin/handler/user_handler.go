package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qatest-api/internal/usecase/user"
	apperrors "qatest-api/pkg/errors"
)

// UserHandler handles HTTP requests for the users resource. It translates
// between the wire format and the usecase layer and wraps every outcome in
// the uniform envelope: status "OK" with an optional result, or status
// "error" with a description. All API responses use HTTP 200 regardless of
// outcome; that contract is what the companion test suites assert against.
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// SuccessResponse is the uniform success envelope. Result is omitted when
// there is nothing to report (e.g. reset).
type SuccessResponse struct {
	Status string `json:"status"`
	Result any    `json:"result,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// UserResponse represents a user on the wire. Name serializes as null when
// absent, never as an empty string.
type UserResponse struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name"`
	MSISDN string  `json:"msisdn"`
}

// DeleteResult carries the delete confirmation message.
type DeleteResult struct {
	Message string `json:"message"`
}

// Reset handles POST /reset and GET /reset
func (h *UserHandler) Reset(c *gin.Context) {
	if err := h.uc.Reset(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondOK(c, nil)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	offset, hasOffset := c.GetQuery("offset")
	count, hasCount := c.GetQuery("count")

	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{
		Offset:    offset,
		Count:     count,
		HasOffset: hasOffset,
		HasCount:  hasCount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Allocate even when empty so the result serializes as [] rather than
	// null.
	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, toUserResponse(u))
	}
	h.respondOK(c, users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.log.Warn("invalid create body", zap.Error(err))
		h.respondError(c, apperrors.NewValidationError("",
			"Request body must be a valid JSON object"))
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{Fields: fields})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondOK(c, toUserResponse(resp.User))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondOK(c, toUserResponse(resp.User))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondOK(c, DeleteResult{Message: resp.Message})
}

// Home handles GET / with a short endpoint index.
func (h *UserHandler) Home(c *gin.Context) {
	h.respondOK(c, gin.H{
		"message": "QATest API",
		"endpoints": gin.H{
			"/reset":                   "Reset the collection to seed data",
			"/users?offset=0&count=10": "List users",
			"/users":                   "Create user (POST)",
			"/users/{id}":              "Get or delete user by id",
		},
	})
}

// parseID extracts and validates the :id path parameter. A malformed id is
// reported through the error envelope, not as a transport-level failure.
func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid user id", zap.String("id", idStr))
		h.respondError(c, apperrors.NewValidationError("id", "User id must be an integer"))
		return 0, false
	}
	return id, true
}

func (h *UserHandler) respondOK(c *gin.Context, result any) {
	c.JSON(http.StatusOK, SuccessResponse{Status: "OK", Result: result})
}

// respondError writes the uniform error envelope with HTTP 200. Expected
// failures (validation, not-found, conflict) log at warn; anything else is an
// internal error and logs at error level.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	if !apperrors.IsReportable(err) {
		h.log.Error("internal error", zap.Error(err))
	}
	c.JSON(http.StatusOK, ErrorResponse{Status: "error", Description: err.Error()})
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, MSISDN: u.MSISDN}
}
