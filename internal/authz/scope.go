package authz

import "strings"

// PostScope is the set restriction applied to a post listing. The filter is
// built once here instead of post-filtering rows in handlers.
type PostScope struct {
	// AuthorID restricts the listing to one author when non-nil.
	AuthorID *uint
	// OnlyPublic restricts the listing to public posts.
	OnlyPublic bool
	// TitleSearch is a case-insensitive substring match on the title.
	// Empty means no title filter.
	TitleSearch string
}

// OwnScope is the "my posts" listing: everything for an admin, the actor's
// own posts otherwise.
func OwnScope(actor *Actor) PostScope {
	if actor.IsAdmin() {
		return PostScope{}
	}
	author := uint(0)
	if actor != nil {
		author = actor.UserID
	}
	return PostScope{AuthorID: &author}
}

// PublicScope is the public feed: public posts only, for every role. Admin
// elevation deliberately does not apply here; browse-all is confined to the
// own-posts listing.
func PublicScope(search string) PostScope {
	return PostScope{
		OnlyPublic:  true,
		TitleSearch: strings.TrimSpace(search),
	}
}
