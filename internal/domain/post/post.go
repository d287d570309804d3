package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post owns its likes set and its ordered comment sequence the same way a
// user owns experiences: embedded in the row, mutated through the aggregate.
type Post struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Content   string      `json:"content"`
	Image     string      `json:"image"`
	Likes     []uuid.UUID `json:"likes"`
	Comments  []Comment   `json:"comments"`
	Version   int64       `json:"-"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrVersionConflict = errors.New("post was modified concurrently")
)

func (p *Post) Validate() error {
	if p.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// ToggleLike flips membership of userID in the likes set: present -> removed,
// absent -> added. Returns the state after the toggle together with the new
// cardinality, since callers need "count after action" as well.
func (p *Post) ToggleLike(userID uuid.UUID) (liked bool, count int) {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false, len(p.Likes)
		}
	}
	p.Likes = append(p.Likes, userID)
	return true, len(p.Likes)
}

// LikedBy reports current membership without mutating.
func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Post) AddComment(authorID uuid.UUID, text string, now time.Time) (Comment, error) {
	if text == "" {
		return Comment{}, errors.New("comment text is required")
	}
	c := Comment{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now,
	}
	p.Comments = append(p.Comments, c)
	return c, nil
}

func (p *Post) RemoveComment(id uuid.UUID) error {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	// Update persists the whole post, checking the version token.
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Post, error)
	Count(ctx context.Context) (int64, error)
}
