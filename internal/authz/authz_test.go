package authz

import (
	"errors"
	"testing"
)

func TestCanReadPost(t *testing.T) {
	author := &Actor{UserID: 1, Username: "alice", Role: RoleUser}
	other := &Actor{UserID: 2, Username: "bob", Role: RoleUser}
	admin := &Actor{UserID: 3, Username: "root", Role: RoleAdmin}

	tests := []struct {
		name       string
		actor      *Actor
		visibility Visibility
		want       error
	}{
		{"unauthenticated public", nil, VisibilityPublic, ErrUnauthenticated},
		{"unauthenticated private", nil, VisibilityPrivate, ErrUnauthenticated},
		{"public readable by anyone", other, VisibilityPublic, nil},
		{"private readable by author", author, VisibilityPrivate, nil},
		{"private readable by admin", admin, VisibilityPrivate, nil},
		{"private denied for others", other, VisibilityPrivate, ErrPrivatePost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanReadPost(tt.actor, author.UserID, tt.visibility)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPrivateReadDenialIsSoft(t *testing.T) {
	other := &Actor{UserID: 2, Role: RoleUser}
	err := CanReadPost(other, 1, VisibilityPrivate)
	if errors.Is(err, ErrForbidden) {
		t.Fatal("private read must not surface as hard forbidden")
	}
	if !errors.Is(err, ErrPrivatePost) {
		t.Fatalf("expected ErrPrivatePost, got %v", err)
	}
}

func TestCanMutatePost(t *testing.T) {
	author := &Actor{UserID: 1, Role: RoleUser}
	other := &Actor{UserID: 2, Role: RoleUser}
	admin := &Actor{UserID: 3, Role: RoleAdmin}

	tests := []struct {
		name  string
		actor *Actor
		want  error
	}{
		{"unauthenticated", nil, ErrUnauthenticated},
		{"author may mutate", author, nil},
		{"admin may mutate", admin, nil},
		{"others denied hard", other, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CanMutatePost(tt.actor, author.UserID); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCanAccessProfile(t *testing.T) {
	owner := &Actor{UserID: 7, Role: RoleUser}
	other := &Actor{UserID: 8, Role: RoleUser}
	admin := &Actor{UserID: 9, Role: RoleAdmin}

	if err := CanAccessProfile(owner, 7); err != nil {
		t.Fatalf("owner should access own profile: %v", err)
	}
	if err := CanAccessProfile(admin, 7); err != nil {
		t.Fatalf("admin should access any profile: %v", err)
	}
	if err := CanAccessProfile(other, 7); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := CanAccessProfile(nil, 7); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	if err := RequireAdmin(&Actor{UserID: 1, Role: RoleAdmin}); err != nil {
		t.Fatalf("unexpected denial for admin: %v", err)
	}
	if err := RequireAdmin(&Actor{UserID: 1, Role: RoleUser}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := RequireAdmin(nil); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCanDeleteUser(t *testing.T) {
	admin := &Actor{UserID: 1, Role: RoleAdmin}
	user := &Actor{UserID: 2, Role: RoleUser}

	if err := CanDeleteUser(admin, 2); err != nil {
		t.Fatalf("admin should delete another user: %v", err)
	}
	if err := CanDeleteUser(user, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	// The self-delete guard holds even for admins.
	if err := CanDeleteUser(admin, admin.UserID); !errors.Is(err, ErrSelfDeleteBlocked) {
		t.Fatalf("expected ErrSelfDeleteBlocked, got %v", err)
	}
}

func TestNormalizeVisibility(t *testing.T) {
	tests := []struct {
		in   string
		want Visibility
	}{
		{"public", VisibilityPublic},
		{"private", VisibilityPrivate},
		{"Private", VisibilityPrivate},
		{"  private  ", VisibilityPrivate},
		{"", VisibilityPublic},
		{"hidden", VisibilityPublic},
	}
	for _, tt := range tests {
		if got := NormalizeVisibility(tt.in); got != tt.want {
			t.Errorf("NormalizeVisibility(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin {
		t.Error("expected admin role")
	}
	if ParseRole("user") != RoleUser {
		t.Error("expected user role")
	}
	if ParseRole("superuser") != RoleUser {
		t.Error("unknown roles must collapse to user")
	}
}
