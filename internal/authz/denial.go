package authz

// DenyKind enumerates the distinct refusal outcomes. Callers must not
// conflate severities: Forbidden is a hard refusal of a mutating or owned
// action, PrivatePost is a recoverable refusal of a private read.
type DenyKind int

const (
	DenyUnauthenticated DenyKind = iota + 1
	DenyNotFound
	DenyForbidden
	DenyPrivatePost
	DenySelfDelete
)

// Denial is a typed authorization refusal. The exported Err* values are the
// only instances; compare with errors.Is.
type Denial struct {
	Kind DenyKind
}

func (d *Denial) Error() string {
	switch d.Kind {
	case DenyUnauthenticated:
		return "authentication required"
	case DenyNotFound:
		return "entity not found"
	case DenyForbidden:
		return "operation not permitted"
	case DenyPrivatePost:
		return "post is private"
	case DenySelfDelete:
		return "cannot delete own account"
	default:
		return "access denied"
	}
}

var (
	ErrUnauthenticated   = &Denial{Kind: DenyUnauthenticated}
	ErrNotFound          = &Denial{Kind: DenyNotFound}
	ErrForbidden         = &Denial{Kind: DenyForbidden}
	ErrPrivatePost       = &Denial{Kind: DenyPrivatePost}
	ErrSelfDeleteBlocked = &Denial{Kind: DenySelfDelete}
)
