package entity

// UserUpdates lists the user columns a request may change.
type UserUpdates struct {
	FirstName     *string
	LastName      *string
	ProfilePicURL *string
	PasswordHash  *string
}

// ToMap converts to a GORM updates map.
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.ProfilePicURL != nil {
		updates["profile_pic_url"] = *u.ProfilePicURL
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// PostUpdates lists the post columns a request may change. AuthorID and ID
// are deliberately absent; they are immutable.
type PostUpdates struct {
	Title      *string
	Content    *string
	Visibility *string
}

// ToMap converts to a GORM updates map.
func (u PostUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	if u.Visibility != nil {
		updates["visibility"] = *u.Visibility
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u PostUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
