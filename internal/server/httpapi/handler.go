package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/userdeck/internal/common"
	"github.com/dmitrijs2005/userdeck/internal/logging"
	"github.com/dmitrijs2005/userdeck/internal/server/directory"
)

type Handler struct {
	directory *directory.Service
	logger    logging.Logger
}

func NewHandler(svc *directory.Service, logger logging.Logger) *Handler {
	return &Handler{directory: svc, logger: logger}
}

// Login accepts {email|username, password} and answers {token}.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
		return
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}

	password := []byte(req.Password)
	defer common.WipeByteArray(password)

	token, err := h.directory.Login(c.Request.Context(), email, password)
	if errors.Is(err, directory.ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user not found"})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// List answers GET /users?page=N[&per_page=M].
func (h *Handler) List(c *gin.Context) {
	page := queryInt(c, "page")
	perPage := queryInt(c, "per_page")

	p, err := h.directory.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update applies the fields present in the body and echoes them back.
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
		return
	}

	patch := directory.Patch{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	if _, err := h.directory.Update(c.Request.Context(), id, patch); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateUserResponse{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.directory.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// fail maps service errors to status codes and {error} bodies.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, directory.ErrMissingEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing email or username"})
	case errors.Is(err, directory.ErrMissingPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing password"})
	case errors.Is(err, directory.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case isTokenError(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return id, true
}
