package handlers

import (
	"errors"
	"net/http"

	"artshare/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-visible messages. These strings are a contract with existing
// clients; change them and the UI breaks.
const (
	msgUserExists     = "User already exists"
	msgRegistered     = "User registered successfully"
	msgRegisterFailed = "Server error during registration"
	msgUserNotFound   = "User not found"
	msgBadCredentials = "Invalid credentials"
	msgLoginOK        = "Login successful"
	msgLoginFailed    = "Server error during login"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return false
	}
	return true
}

// @Summary      Register a new account
// @Description  No field-format validation is performed; the created record is returned verbatim.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account fields"
// @Success      201   {object}  map[string]interface{}  "message, user"
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"message": msgUserExists})
	case err != nil:
		if h.log != nil {
			h.log.Errorw("register_failed", "email", req.Email, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgRegisterFailed})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": msgRegistered, "user": user})
	}
}

// @Summary      Log in
// @Description  An unknown email reports 404 before the password is ever checked.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "message, token"
// @Failure      404   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	tok, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgBadCredentials})
	case err != nil:
		if h.log != nil {
			h.log.Errorw("login_failed", "email", req.Email, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgLoginFailed})
	default:
		c.JSON(http.StatusOK, gin.H{"message": msgLoginOK, "token": tok})
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
