package handlers

import (
	"errors"
	"net/http"

	"artshare/internal/models"
	"artshare/internal/service"

	"github.com/gin-gonic/gin"
)

const msgServerError = "Server error"

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Centralized error logging and response for the management routes.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, users"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Accounts.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	u, err := h.services.Accounts.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "user_get_failed", err, "id", c.Param("id"))
	default:
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// @Summary      Update a user
// @Description  Overwrites username, email, password and role. The id is immutable.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "New field values"
// @Success      200   {object}  map[string]interface{}  "user"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, err := h.services.Accounts.Update(c.Request.Context(), models.User{
		ID:       c.Param("id"),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "user_update_failed", err, "id", c.Param("id"))
	default:
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	err := h.services.Accounts.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, msgServerError, "user_delete_failed", err, "id", c.Param("id"))
	default:
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
