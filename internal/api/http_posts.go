package api

import (
	"context"
	"errors"
	"miniblog/internal/authz"
	"miniblog/internal/entity"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Feed returns both listings of the home view: the requester's own posts
// (every author's posts for an admin) and the public feed, optionally
// filtered by a title search term. The public section stays public-only for
// admins too.
func (h *HTTPHandler) Feed(c *gin.Context) {
	actor := CurrentActor(c)
	if actor == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var query entity.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	mine, err := h.repo.ListPosts(ctx, authz.OwnScope(actor))
	if err != nil {
		logrus.WithError(err).Error("failed to list own posts")
		InternalError(c, "failed to load feed")
		return
	}

	public, err := h.repo.ListPosts(ctx, authz.PublicScope(query.Search))
	if err != nil {
		logrus.WithError(err).Error("failed to list public posts")
		InternalError(c, "failed to load feed")
		return
	}

	c.JSON(http.StatusOK, entity.FeedResponse{
		Mine:   makePostSummaries(mine),
		Public: makePostSummaries(public),
		Search: strings.TrimSpace(query.Search),
	})
}

func (h *HTTPHandler) GetPost(c *gin.Context) {
	actor := CurrentActor(c)
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// Not-found is decided before any ownership or role check so that a
	// denial kind never reveals whether the id exists.
	post, err := h.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePostNotFound, "post not found")
			return
		}
		logrus.WithError(err).WithField("post_id", postID).Error("failed to load post")
		InternalError(c, "failed to load post")
		return
	}

	if err := authz.CanReadPost(actor, post.AuthorID, authz.Visibility(post.Visibility)); err != nil {
		DenialResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, makePostSummary(post))
}

// CreatePost creates a post authored by the requester. The author is always
// the session identity; any author id in the payload is ignored.
func (h *HTTPHandler) CreatePost(c *gin.Context) {
	actor := CurrentActor(c)
	if actor == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var req entity.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	post := &entity.DbPost{
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		AuthorID:   actor.UserID,
		Visibility: string(authz.NormalizeVisibility(req.Visibility)),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreatePost(ctx, post); err != nil {
		logrus.WithError(err).Error("failed to create post")
		InternalError(c, "failed to create post")
		return
	}

	created, err := h.repo.GetPostByID(ctx, post.ID)
	if err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Error("failed to reload post after create")
		InternalError(c, "failed to load created post")
		return
	}

	c.JSON(http.StatusCreated, makePostSummary(created))
}

func (h *HTTPHandler) UpdatePost(c *gin.Context) {
	actor := CurrentActor(c)
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	post, err := h.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePostNotFound, "post not found")
			return
		}
		logrus.WithError(err).WithField("post_id", postID).Error("failed to load post for update")
		InternalError(c, "failed to update post")
		return
	}

	if err := authz.CanMutatePost(actor, post.AuthorID); err != nil {
		DenialResponse(c, err)
		return
	}

	updates := entity.PostUpdates{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Visibility != nil {
		normalized := string(authz.NormalizeVisibility(*req.Visibility))
		updates.Visibility = &normalized
	}

	if updates.IsEmpty() {
		c.JSON(http.StatusOK, makePostSummary(post))
		return
	}

	if err := h.repo.UpdatePost(ctx, post.ID, updates); err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Error("failed to update post")
		InternalError(c, "failed to update post")
		return
	}

	updated, err := h.repo.GetPostByID(ctx, post.ID)
	if err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Error("failed to reload post after update")
		InternalError(c, "failed to load updated post")
		return
	}

	c.JSON(http.StatusOK, makePostSummary(updated))
}

func (h *HTTPHandler) DeletePost(c *gin.Context) {
	actor := CurrentActor(c)
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	post, err := h.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePostNotFound, "post not found")
			return
		}
		logrus.WithError(err).WithField("post_id", postID).Error("failed to load post for deletion")
		InternalError(c, "failed to delete post")
		return
	}

	if err := authz.CanMutatePost(actor, post.AuthorID); err != nil {
		DenialResponse(c, err)
		return
	}

	if err := h.repo.DeletePost(ctx, post.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodePostNotFound, "post not found")
			return
		}
		logrus.WithError(err).WithField("post_id", post.ID).Error("failed to delete post")
		InternalError(c, "failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	idValue := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
