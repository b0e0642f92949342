package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a gadget post submitted by a user.
// ID and PostedAt are assigned at creation and never change; UserID is the owner.
type Post struct {
	ID         int64
	UserID     uuid.UUID
	CategoryID int64
	Title      string
	Comment    string
	Image1     string
	Image2     string
	MapEmbed   string
	PostedAt   time.Time
}

// Category is a pre-existing post category. Posts reference it by ID.
type Category struct {
	ID   int64
	Name string
}

// CanMutate reports whether the requester may delete or edit the post.
// Only the owner may; an anonymous requester (uuid.Nil) never may.
func CanMutate(requesterID uuid.UUID, post *Post) bool {
	if post == nil || requesterID == uuid.Nil {
		return false
	}
	return post.UserID == requesterID
}

// OlderThan reports whether p sorts after (postedAt, id) in newest-first
// order: p is older, or equally old with a smaller ID.
func (p *Post) OlderThan(postedAt time.Time, id int64) bool {
	if p.PostedAt.Equal(postedAt) {
		return p.ID < id
	}
	return p.PostedAt.Before(postedAt)
}
