package entity

import "time"

// DbPost represents a persisted blog post. AuthorID and CreatedAt are
// immutable after creation.
type DbPost struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	AuthorID   uint      `gorm:"column:author_id;index;not null" json:"author_id"`
	Author     DbUser    `gorm:"foreignKey:AuthorID" json:"-"`
	Visibility string    `gorm:"column:visibility;type:varchar(20);index;not null" json:"visibility"`
}

// TableName overrides default pluralised name.
func (DbPost) TableName() string {
	return "posts"
}

// PostSummary is the post representation returned to clients, carrying the
// author's username alongside the id.
type PostSummary struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Visibility string    `json:"visibility"`
	AuthorID   uint      `json:"author_id"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostCreateRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Visibility string `json:"visibility"`
}

type PostUpdateRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Visibility *string `json:"visibility,omitempty"`
}

// FeedQuery supports the feed listing.
type FeedQuery struct {
	Search string `json:"search" form:"search" query:"search"`
}

// FeedResponse carries both feed sections: the requester's own posts (all of
// them for admins) and the public feed.
type FeedResponse struct {
	Mine   []PostSummary `json:"mine"`
	Public []PostSummary `json:"public"`
	Search string        `json:"search,omitempty"`
}
