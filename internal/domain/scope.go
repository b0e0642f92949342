package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ScopeKind selects which posts a listing returns.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeCategory
	ScopeOwner
)

// Scope is a predicate restricting a post listing.
type Scope struct {
	Kind       ScopeKind
	CategoryID int64
	OwnerID    uuid.UUID
}

// AllPosts returns the unrestricted scope.
func AllPosts() Scope { return Scope{Kind: ScopeAll} }

// ByCategory restricts a listing to one category.
func ByCategory(categoryID int64) Scope {
	return Scope{Kind: ScopeCategory, CategoryID: categoryID}
}

// ByOwner restricts a listing to posts owned by one user.
func ByOwner(userID uuid.UUID) Scope {
	return Scope{Kind: ScopeOwner, OwnerID: userID}
}

// Matches reports whether the post falls inside the scope.
func (s Scope) Matches(p *Post) bool {
	switch s.Kind {
	case ScopeCategory:
		return p.CategoryID == s.CategoryID
	case ScopeOwner:
		return p.UserID == s.OwnerID
	default:
		return true
	}
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeCategory:
		return fmt.Sprintf("category:%d", s.CategoryID)
	case ScopeOwner:
		return "owner:" + s.OwnerID.String()
	default:
		return "all"
	}
}

// RouteParams carries the listing selectors a route can supply.
// At most one of them may be set.
type RouteParams struct {
	CategoryID *int64
	UserID     *uuid.UUID
	Mine       bool
}

// ScopeFromRoute picks the listing scope for a route.
// "Mine" is resolved against the requester, never against a URL parameter;
// requester is uuid.Nil for anonymous calls.
func ScopeFromRoute(params RouteParams, requester uuid.UUID) (Scope, error) {
	set := 0
	if params.CategoryID != nil {
		set++
	}
	if params.UserID != nil {
		set++
	}
	if params.Mine {
		set++
	}
	if set > 1 {
		return Scope{}, NewValidationError("scope", "only one of category, user or mine may be set")
	}

	switch {
	case params.Mine:
		if requester == uuid.Nil {
			return Scope{}, ErrUnauthorized
		}
		return ByOwner(requester), nil
	case params.CategoryID != nil:
		if *params.CategoryID <= 0 {
			return Scope{}, NewValidationError("category_id", "must be positive")
		}
		return ByCategory(*params.CategoryID), nil
	case params.UserID != nil:
		if *params.UserID == uuid.Nil {
			return Scope{}, NewValidationError("user_id", "required")
		}
		return ByOwner(*params.UserID), nil
	default:
		return AllPosts(), nil
	}
}
