package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/service"
)

// Auth handles the single /auth endpoint. The action field selects between
// login and verify, matching the shape the admin UI already sends.
func (h HandlerSet) Auth(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON data"})
		return
	}

	switch anyString(payload["action"]) {
	case "login":
		h.login(c, payload)
	case "verify":
		h.verifyToken(c, payload)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid action"})
	}
}

func (h HandlerSet) login(c *gin.Context, payload map[string]any) {
	result, err := h.auth.Login(c.Request.Context(),
		anyString(payload["username"]), anyString(payload["password"]))
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to log in.", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   result.Token,
		"user": gin.H{
			"id":        result.User.ID,
			"username":  result.User.Username,
			"email":     result.User.Email,
			"full_name": result.User.FullName,
		},
	})
}

func (h HandlerSet) verifyToken(c *gin.Context, payload map[string]any) {
	token := anyString(payload["token"])
	if token == "" {
		// Fall back to the Authorization header so the admin UI can verify
		// the token it already attaches to every request.
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}

	claims, err := h.auth.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}
