package entity

import "time"

// DbUser represents a persisted user account.
type DbUser struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Username      string    `gorm:"column:username;type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role          string    `gorm:"column:role;type:varchar(50);index;not null" json:"role"`
	FirstName     string    `gorm:"column:first_name;type:varchar(255)" json:"first_name"`
	LastName      string    `gorm:"column:last_name;type:varchar(255)" json:"last_name"`
	ProfilePicURL string    `gorm:"column:profile_pic_url;type:varchar(1024)" json:"profile_pic_url"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// UserSummary is a lightweight user description returned to clients.
type UserSummary struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ProfilePicURL string    `json:"profile_pic_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AuthLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthRegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// ProfileUpdateRequest carries the mutable profile attributes. Absent fields
// are left untouched.
type ProfileUpdateRequest struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
}

// ProfileUpdateResponse reports the committed profile. PictureError is set
// when the name fields were updated but the picture URL failed validation;
// the request as a whole still succeeded.
type ProfileUpdateResponse struct {
	User         UserSummary `json:"user"`
	PictureError string      `json:"picture_error,omitempty"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}
