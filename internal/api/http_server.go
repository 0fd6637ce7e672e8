package api

import (
	"miniblog/internal/auth"
	"miniblog/internal/config"
	"miniblog/internal/entity"
	"miniblog/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPHandler serves the JSON API.
type HTTPHandler struct {
	cfg          config.Config
	repo         model.Repository
	authManager  *auth.Manager
	fetchTimeout time.Duration
}

// NewHTTPHandler creates the handler with its JWT manager.
func NewHTTPHandler(cfg config.Config, repo model.Repository) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	fetchTimeout := time.Duration(cfg.ProfileFetchTimeoutSeconds) * time.Second

	return &HTTPHandler{
		cfg:          cfg,
		repo:         repo,
		authManager:  authManager,
		fetchTimeout: fetchTimeout,
	}, nil
}

// NewRouter assembles the full gin engine: middleware, health check and all
// API routes.
func NewRouter(cfg config.Config, repo model.Repository) (*gin.Engine, error) {
	h, err := NewHTTPHandler(cfg, repo)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/me", h.AuthMiddleware(), h.Me)
	authGroup.POST("/logout", h.AuthMiddleware(), h.Logout)

	protected := apiGroup.Group("")
	protected.Use(h.AuthMiddleware())
	protected.GET("/posts/feed", h.Feed)
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts/:id", h.GetPost)
	protected.PATCH("/posts/:id", h.UpdatePost)
	protected.DELETE("/posts/:id", h.DeletePost)
	protected.GET("/users/:id/profile", h.GetProfile)
	protected.PATCH("/users/:id/profile", h.UpdateProfile)

	userAdmin := protected.Group("/users")
	userAdmin.Use(h.RequireAdmin())
	userAdmin.GET("", h.ListUsers)
	userAdmin.DELETE(":id", h.DeleteUser)

	return r, nil
}

func makeUserSummary(user *entity.DbUser) entity.UserSummary {
	if user == nil {
		return entity.UserSummary{}
	}
	return entity.UserSummary{
		ID:            user.ID,
		Username:      user.Username,
		Role:          user.Role,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		ProfilePicURL: user.ProfilePicURL,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func makePostSummary(post *entity.DbPost) entity.PostSummary {
	if post == nil {
		return entity.PostSummary{}
	}
	return entity.PostSummary{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Visibility: post.Visibility,
		AuthorID:   post.AuthorID,
		Author:     post.Author.Username,
		CreatedAt:  post.CreatedAt,
	}
}

func makePostSummaries(posts []entity.DbPost) []entity.PostSummary {
	summaries := make([]entity.PostSummary, 0, len(posts))
	for idx := range posts {
		summaries = append(summaries, makePostSummary(&posts[idx]))
	}
	return summaries
}
