package api

import (
	"context"
	"errors"
	"miniblog/internal/authz"
	"miniblog/internal/entity"
	"miniblog/internal/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) GetProfile(c *gin.Context) {
	actor := CurrentActor(c)
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		logrus.WithError(err).WithField("user_id", userID).Error("failed to load profile")
		InternalError(c, "failed to load profile")
		return
	}

	if err := authz.CanAccessProfile(actor, user.ID); err != nil {
		DenialResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, makeUserSummary(user))
}

// UpdateProfile commits the name fields first, then validates and applies
// the picture URL as a separate write. A failed picture probe never rolls
// the name update back; it is reported in-band as a partial success.
func (h *HTTPHandler) UpdateProfile(c *gin.Context) {
	actor := CurrentActor(c)
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		logrus.WithError(err).WithField("user_id", userID).Error("failed to load user for profile update")
		InternalError(c, "failed to update profile")
		return
	}

	if err := authz.CanAccessProfile(actor, user.ID); err != nil {
		DenialResponse(c, err)
		return
	}

	nameUpdates := entity.UserUpdates{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if !nameUpdates.IsEmpty() {
		if err := h.repo.UpdateUser(ctx, user.ID, nameUpdates); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("failed to update profile")
			InternalError(c, "failed to update profile")
			return
		}
	}

	pictureError := ""
	if req.ProfilePicURL != nil {
		picURL := strings.TrimSpace(*req.ProfilePicURL)
		if picURL != "" {
			// The probe runs outside any store transaction; the name update
			// above has already committed.
			if err := utils.ProbeImageURL(c.Request.Context(), picURL, h.fetchTimeout); err != nil {
				logrus.WithError(err).WithField("url", picURL).Warn("profile picture probe failed")
				pictureError = err.Error()
			} else if err := h.repo.UpdateUser(ctx, user.ID, entity.UserUpdates{ProfilePicURL: &picURL}); err != nil {
				logrus.WithError(err).WithField("user_id", user.ID).Error("failed to update profile picture")
				InternalError(c, "failed to update profile")
				return
			}
		}
	}

	updated, err := h.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("failed to reload user after profile update")
		InternalError(c, "failed to load updated profile")
		return
	}

	c.JSON(http.StatusOK, entity.ProfileUpdateResponse{
		User:         makeUserSummary(updated),
		PictureError: pictureError,
	})
}
