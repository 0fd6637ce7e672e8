package api

import (
	"context"
	"errors"
	"miniblog/internal/authz"
	"miniblog/internal/entity"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListUsers returns every account. Admin-only; the route group enforces the
// role and the handler re-checks it.
func (h *HTTPHandler) ListUsers(c *gin.Context) {
	actor := CurrentActor(c)
	if err := authz.RequireAdmin(actor); err != nil {
		DenialResponse(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.repo.ListUsers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		InternalError(c, "failed to load users")
		return
	}

	response := entity.UserListResponse{
		Users: make([]entity.UserSummary, 0, len(users)),
	}
	for idx := range users {
		response.Users = append(response.Users, makeUserSummary(&users[idx]))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteUser removes an account and every post it authored, as one
// transaction. Admins cannot delete themselves.
func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	actor := CurrentActor(c)
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := authz.CanDeleteUser(actor, userID); err != nil {
		DenialResponse(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteUserCascade(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		logrus.WithError(err).WithField("user_id", userID).Error("failed to delete user")
		InternalError(c, "failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
