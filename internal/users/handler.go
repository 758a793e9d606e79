package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/me/template", h.setDefaultTemplate)
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := h.requireAccount(c)
	if !ok {
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"fullName":        user.FullName,
		"pictureUrl":      user.PictureURL,
		"defaultTemplate": user.DefaultTemplate,
	})
}

func (h *Handler) setDefaultTemplate(c *gin.Context) {
	userID, ok := h.requireAccount(c)
	if !ok {
		return
	}

	var body struct {
		Template string `json:"template"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.SetDefaultTemplate(c.Request.Context(), userID, body.Template)
	switch {
	case err == nil:
		respond.JSON(c, http.StatusOK, gin.H{"defaultTemplate": body.Template})
	case errors.Is(err, ErrUnknownTemplate):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save preference", nil)
	}
}

// requireAccount rejects guests; preferences and profile data belong to
// signed-in users only.
func (h *Handler) requireAccount(c *gin.Context) (string, bool) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return "", false
	}
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return "", false
		}
	}
	return middleware.UserIDFromContext(c), true
}
