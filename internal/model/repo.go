package model

import (
	"context"
	"miniblog/internal/authz"
	"miniblog/internal/entity"
)

// Repository defines the persistence operations of the service.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context) ([]entity.DbUser, error)
	CountUsers(ctx context.Context) (int64, error)
	// DeleteUserCascade removes the user and every post they authored in a
	// single transaction.
	DeleteUserCascade(ctx context.Context, id uint) error

	// Posts
	CreatePost(ctx context.Context, post *entity.DbPost) error
	UpdatePost(ctx context.Context, id uint, updates entity.PostUpdates) error
	GetPostByID(ctx context.Context, id uint) (*entity.DbPost, error)
	ListPosts(ctx context.Context, scope authz.PostScope) ([]entity.DbPost, error)
	DeletePost(ctx context.Context, id uint) error
}
