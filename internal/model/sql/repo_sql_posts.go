package sql

import (
	"context"
	"fmt"
	"miniblog/internal/authz"
	"miniblog/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreatePost persists a new post record.
func (r *GormRepository) CreatePost(ctx context.Context, post *entity.DbPost) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if post == nil {
		return fmt.Errorf("post is nil")
	}
	return r.db.WithContext(ctx).Create(post).Error
}

// UpdatePost updates title/content/visibility of an existing post.
func (r *GormRepository) UpdatePost(ctx context.Context, id uint, updates entity.PostUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid post id")
	}
	if updates.IsEmpty() {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbPost{}).Where("id = ?", id).Updates(updates.ToMap()).Error
}

// GetPostByID loads a post with its author.
func (r *GormRepository) GetPostByID(ctx context.Context, id uint) (*entity.DbPost, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid post id")
	}
	var post entity.DbPost
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns the posts matching the given scope, newest first. The
// scope is the single place visibility filtering happens; rows are never
// post-filtered by callers.
func (r *GormRepository) ListPosts(ctx context.Context, scope authz.PostScope) ([]entity.DbPost, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbPost{}).Preload("Author")
	if scope.AuthorID != nil {
		query = query.Where("author_id = ?", *scope.AuthorID)
	}
	if scope.OnlyPublic {
		query = query.Where("visibility = ?", string(authz.VisibilityPublic))
	}
	if term := strings.TrimSpace(scope.TitleSearch); term != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var posts []entity.DbPost
	if err := query.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost removes a post by ID.
func (r *GormRepository) DeletePost(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid post id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
