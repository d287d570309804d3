package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
)

// Aggregate mutations follow read-modify-write against the parent row. The
// writers below are the single choke point for that pattern: load, apply the
// mutation, persist as one unit. A version check on the UPDATE catches
// concurrent writers; on conflict the whole mutation is recomputed against a
// fresh snapshot, so updates to different sub-entities of the same parent are
// never lost.
const maxWriteRetries = 3

type UserWriter struct {
	users user.Repository
}

func NewUserWriter(users user.Repository) *UserWriter {
	return &UserWriter{users: users}
}

// WithUser loads the aggregate, applies mutate and persists the result. A
// missing parent short-circuits before mutate runs. Errors from mutate or the
// store discard the in-memory computation entirely.
func (w *UserWriter) WithUser(ctx context.Context, id uuid.UUID, mutate func(*user.User) error) (*user.User, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		u, err := w.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(u); err != nil {
			return nil, err
		}
		err = w.users.Update(ctx, u)
		if errors.Is(err, user.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return u, nil
	}
	return nil, user.ErrVersionConflict
}

// WithUserPair does the same for relationship transitions that must land on
// both endpoints at once. Both aggregates go through one transaction.
func (w *UserWriter) WithUserPair(ctx context.Context, aID, bID uuid.UUID, mutate func(a, b *user.User) error) (*user.User, *user.User, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		a, err := w.users.FindByID(ctx, aID)
		if err != nil {
			return nil, nil, err
		}
		b, err := w.users.FindByID(ctx, bID)
		if err != nil {
			return nil, nil, err
		}
		if err := mutate(a, b); err != nil {
			return nil, nil, err
		}
		err = w.users.UpdatePair(ctx, a, b)
		if errors.Is(err, user.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	return nil, nil, user.ErrVersionConflict
}

type PostWriter struct {
	posts post.Repository
}

func NewPostWriter(posts post.Repository) *PostWriter {
	return &PostWriter{posts: posts}
}

func (w *PostWriter) WithPost(ctx context.Context, id uuid.UUID, mutate func(*post.Post) error) (*post.Post, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		p, err := w.posts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(p); err != nil {
			return nil, err
		}
		err = w.posts.Update(ctx, p)
		if errors.Is(err, post.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, post.ErrVersionConflict
}
