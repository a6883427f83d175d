package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/service"
)

func (h HandlerSet) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to fetch users.", err),
		})
		return
	}

	if users == nil {
		users = []models.AdminUser{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func (h HandlerSet) CreateUser(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON data"})
		return
	}

	id, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		Username: anyString(payload["username"]),
		Password: anyString(payload["password"]),
		Email:    anyString(payload["email"]),
		FullName: anyString(payload["full_name"]),
	})
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Username already exists"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to create user.", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"id":      id,
	})
}

// UpdateUser covers both the profile update and the change_password action,
// distinguished by the action field.
func (h HandlerSet) UpdateUser(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON data"})
		return
	}

	userID := anyInt64(payload["user_id"])
	if userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User ID is required"})
		return
	}

	if anyString(payload["action"]) == "change_password" {
		h.changePassword(c, userID, payload)
		return
	}

	isActive, ok := payload["is_active"].(bool)
	if !ok {
		isActive = true
	}

	err := h.users.UpdateProfile(c.Request.Context(), service.UpdateUserInput{
		UserID:   userID,
		Email:    anyString(payload["email"]),
		FullName: anyString(payload["full_name"]),
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to update user.", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully"})
}

func (h HandlerSet) changePassword(c *gin.Context, userID int64, payload map[string]any) {
	err := h.users.ChangePassword(c.Request.Context(), service.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: anyString(payload["current_password"]),
		NewPassword:     anyString(payload["new_password"]),
	})
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
			return
		}
		if errors.Is(err, service.ErrWrongPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to change password.", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}
