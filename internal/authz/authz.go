// Package authz decides, for every request, which rows the acting identity
// may read or mutate. It owns the role model (user/admin), the ownership
// model (posts belong to an author) and the visibility model (public/private
// posts). Handlers load the target entity first, so a missing id is reported
// as not-found before any ownership or role denial can leak its existence.
package authz

import "strings"

// Role is the coarse permission tier of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role string to a Role, defaulting to RoleUser for
// anything unrecognized.
func ParseRole(s string) Role {
	if strings.TrimSpace(strings.ToLower(s)) == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Visibility controls whether non-owners may read a post.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// NormalizeVisibility maps arbitrary input to a valid visibility. Anything
// that is not exactly "private" becomes public.
func NormalizeVisibility(s string) Visibility {
	if strings.TrimSpace(strings.ToLower(s)) == string(VisibilityPrivate) {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// Actor is the immutable per-request identity, captured from the session
// token at login time and trusted as-is for the token's lifetime. A nil
// Actor means the request is unauthenticated.
type Actor struct {
	UserID   uint
	Username string
	Role     Role
}

// IsAdmin reports whether the actor holds the admin role. Safe on nil.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// CanReadPost allows reading a post that is public, owned by the actor, or
// when the actor is an admin. Denial of a private read is the soft
// ErrPrivatePost, distinct from the hard ErrForbidden.
func CanReadPost(actor *Actor, authorID uint, visibility Visibility) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if visibility == VisibilityPublic {
		return nil
	}
	if actor.UserID == authorID || actor.IsAdmin() {
		return nil
	}
	return ErrPrivatePost
}

// CanMutatePost allows editing or deleting a post only for its author or an
// admin.
func CanMutatePost(actor *Actor, authorID uint) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.UserID == authorID || actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// CanAccessProfile allows reading or updating a profile only for its owner
// or an admin.
func CanAccessProfile(actor *Actor, targetUserID uint) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if actor.UserID == targetUserID || actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// RequireAdmin gates admin-only actions such as listing all users.
func RequireAdmin(actor *Actor) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CanDeleteUser gates user deletion: the actor must be an admin and must not
// be deleting their own account. The self-delete guard applies to admins too
// and is reported as its own denial kind.
func CanDeleteUser(actor *Actor, targetUserID uint) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == targetUserID {
		return ErrSelfDeleteBlocked
	}
	return nil
}
