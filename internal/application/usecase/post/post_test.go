package post

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hoangnp/careernet/internal/application/service"
	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type memPostRepo struct {
	posts map[uuid.UUID]*post.Post
	order []uuid.UUID
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*post.Post)}
}

func copyPost(p *post.Post) *post.Post {
	cp := *p
	cp.Likes = append([]uuid.UUID{}, p.Likes...)
	cp.Comments = append([]post.Comment{}, p.Comments...)
	return &cp
}

func (r *memPostRepo) Save(_ context.Context, p *post.Post) error {
	r.posts[p.ID] = copyPost(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return copyPost(p), nil
}

func (r *memPostRepo) Update(_ context.Context, p *post.Post) error {
	stored, ok := r.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}
	if stored.Version != p.Version {
		return post.ErrVersionConflict
	}
	p.Version++
	r.posts[p.ID] = copyPost(p)
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) List(_ context.Context, limit, offset int) ([]*post.Post, error) {
	var out []*post.Post
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		if p, ok := r.posts[r.order[i]]; ok {
			out = append(out, copyPost(p))
		}
	}
	return out, nil
}

func (r *memPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

// userExistsRepo answers FindByID for a fixed set of ids; everything else is
// unused by the post use cases.
type userExistsRepo struct {
	known map[uuid.UUID]bool
}

func (r *userExistsRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if !r.known[id] {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: id}, nil
}

func (r *userExistsRepo) Save(context.Context, *user.User) error { return nil }
func (r *userExistsRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *userExistsRepo) Update(context.Context, *user.User) error                 { return nil }
func (r *userExistsRepo) UpdatePair(context.Context, *user.User, *user.User) error { return nil }
func (r *userExistsRepo) Delete(context.Context, uuid.UUID) error                  { return nil }
func (r *userExistsRepo) SearchByName(context.Context, string, int, int) ([]*user.User, error) {
	return nil, nil
}

func seedPost(t *testing.T, repo *memPostRepo, ownerID uuid.UUID) *post.Post {
	t.Helper()
	p := &post.Post{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Content:  "hello world",
		Likes:    []uuid.UUID{},
		Comments: []post.Comment{},
	}
	assert.NoError(t, repo.Save(context.Background(), p))
	return p
}

func TestCreatePost(t *testing.T) {
	postRepo := newMemPostRepo()
	owner := uuid.New()
	userRepo := &userExistsRepo{known: map[uuid.UUID]bool{owner: true}}
	uc := NewCreatePostUseCase(postRepo, userRepo)

	output, err := uc.Execute(context.Background(), CreatePostInput{OwnerID: owner, Content: "first post"})

	assert.NoError(t, err)
	stored, err := postRepo.FindByID(context.Background(), output.PostID)
	assert.NoError(t, err)
	assert.Equal(t, "first post", stored.Content)
	assert.Equal(t, "", stored.Image)
	assert.Empty(t, stored.Likes)
}

func TestCreatePost_OwnerMissing(t *testing.T) {
	uc := NewCreatePostUseCase(newMemPostRepo(), &userExistsRepo{known: map[uuid.UUID]bool{}})

	_, err := uc.Execute(context.Background(), CreatePostInput{OwnerID: uuid.New(), Content: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	owner := uuid.New()
	uc := NewCreatePostUseCase(newMemPostRepo(), &userExistsRepo{known: map[uuid.UUID]bool{owner: true}})

	_, err := uc.Execute(context.Background(), CreatePostInput{OwnerID: owner})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestToggleLike(t *testing.T) {
	postRepo := newMemPostRepo()
	owner := uuid.New()
	actor := uuid.New()
	userRepo := &userExistsRepo{known: map[uuid.UUID]bool{owner: true, actor: true}}
	p := seedPost(t, postRepo, owner)

	uc := NewToggleLikeUseCase(service.NewPostWriter(postRepo), userRepo, nil, logger.NewNopLogger())

	output, err := uc.Execute(context.Background(), p.ID, actor)
	assert.NoError(t, err)
	assert.True(t, output.Liked)
	assert.Equal(t, 1, output.LikeCount)

	// Toggling again is the inverse.
	output, err = uc.Execute(context.Background(), p.ID, actor)
	assert.NoError(t, err)
	assert.False(t, output.Liked)
	assert.Equal(t, 0, output.LikeCount)

	stored, _ := postRepo.FindByID(context.Background(), p.ID)
	assert.Empty(t, stored.Likes)
}

func TestToggleLike_ActorMissing(t *testing.T) {
	postRepo := newMemPostRepo()
	owner := uuid.New()
	userRepo := &userExistsRepo{known: map[uuid.UUID]bool{owner: true}}
	p := seedPost(t, postRepo, owner)

	uc := NewToggleLikeUseCase(service.NewPostWriter(postRepo), userRepo, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), p.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestToggleLike_PostMissing(t *testing.T) {
	actor := uuid.New()
	userRepo := &userExistsRepo{known: map[uuid.UUID]bool{actor: true}}

	uc := NewToggleLikeUseCase(service.NewPostWriter(newMemPostRepo()), userRepo, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), uuid.New(), actor)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	postRepo := newMemPostRepo()
	owner := uuid.New()
	author := uuid.New()
	userRepo := &userExistsRepo{known: map[uuid.UUID]bool{owner: true, author: true}}
	p := seedPost(t, postRepo, owner)

	uc := NewAddCommentUseCase(service.NewPostWriter(postRepo), userRepo)

	comment, err := uc.Execute(context.Background(), AddCommentInput{
		PostID: p.ID, AuthorID: author, Text: "nice post",
	})
	assert.NoError(t, err)
	assert.Equal(t, author, comment.AuthorID)

	stored, _ := postRepo.FindByID(context.Background(), p.ID)
	assert.Len(t, stored.Comments, 1)

	_, err = uc.Execute(context.Background(), AddCommentInput{PostID: p.ID, AuthorID: author})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestListPosts_Pagination(t *testing.T) {
	postRepo := newMemPostRepo()
	owner := uuid.New()
	for i := 0; i < 5; i++ {
		seedPost(t, postRepo, owner)
	}

	uc := NewListPostsUseCase(postRepo)

	output, err := uc.Execute(context.Background(), ListPostsInput{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, output.Posts, 2)
	assert.Equal(t, int64(5), output.Total)
	assert.Equal(t, 2, output.Page)

	// Defaults kick in for zero values.
	output, err = uc.Execute(context.Background(), ListPostsInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.Limit)
}

func TestUpdatePost(t *testing.T) {
	postRepo := newMemPostRepo()
	p := seedPost(t, postRepo, uuid.New())

	uc := NewUpdatePostUseCase(service.NewPostWriter(postRepo))

	content := "edited"
	updated, err := uc.Execute(context.Background(), UpdatePostInput{PostID: p.ID, Content: &content})
	assert.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	empty := ""
	_, err = uc.Execute(context.Background(), UpdatePostInput{PostID: p.ID, Content: &empty})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDeletePost(t *testing.T) {
	postRepo := newMemPostRepo()
	p := seedPost(t, postRepo, uuid.New())

	uc := NewDeletePostUseCase(postRepo)

	assert.NoError(t, uc.Execute(context.Background(), p.ID))
	assert.ErrorIs(t, uc.Execute(context.Background(), p.ID), apperror.ErrNotFound)
}
