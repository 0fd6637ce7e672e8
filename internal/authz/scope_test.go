package authz

import "testing"

func TestOwnScope(t *testing.T) {
	user := &Actor{UserID: 5, Role: RoleUser}
	scope := OwnScope(user)
	if scope.AuthorID == nil || *scope.AuthorID != 5 {
		t.Fatalf("expected author restriction to user 5, got %v", scope.AuthorID)
	}
	if scope.OnlyPublic {
		t.Fatal("own listing must include private posts")
	}

	admin := &Actor{UserID: 1, Role: RoleAdmin}
	scope = OwnScope(admin)
	if scope.AuthorID != nil {
		t.Fatal("admin own listing must span all authors")
	}
	if scope.OnlyPublic {
		t.Fatal("admin own listing must include private posts")
	}
}

func TestPublicScopeIsPublicOnlyForEveryRole(t *testing.T) {
	// The public feed contract is uniform; there is no actor parameter by
	// construction, so admin elevation cannot leak into it.
	scope := PublicScope("")
	if !scope.OnlyPublic {
		t.Fatal("public feed must be restricted to public posts")
	}
	if scope.AuthorID != nil {
		t.Fatal("public feed must span all authors")
	}
}

func TestPublicScopeSearchTrimmed(t *testing.T) {
	scope := PublicScope("  hello  ")
	if scope.TitleSearch != "hello" {
		t.Fatalf("expected trimmed search term, got %q", scope.TitleSearch)
	}
	if !scope.OnlyPublic {
		t.Fatal("search must not widen the public-only restriction")
	}
}
