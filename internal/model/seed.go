package model

import (
	"context"
	"errors"
	"miniblog/internal/auth"
	"miniblog/internal/authz"
	"miniblog/internal/config"
	"miniblog/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// SeedAdminUser ensures the configured admin account exists. There is no API
// path that escalates a user to admin, so the admin is provisioned here at
// startup. Seeding is skipped when no admin password is configured.
func SeedAdminUser(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	username := strings.TrimSpace(cfg.AdminUsername)
	password := strings.TrimSpace(cfg.AdminPassword)
	if username == "" || password == "" {
		return nil
	}

	_, err := repo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		// Already provisioned; never reset credentials on restart.
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		admin := &entity.DbUser{
			Username:     username,
			PasswordHash: hash,
			Role:         string(authz.RoleAdmin),
		}
		return repo.CreateUser(ctx, admin)
	default:
		return err
	}
}
