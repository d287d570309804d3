package post

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToggleLike(t *testing.T) {
	p := &Post{ID: uuid.New(), Likes: []uuid.UUID{}}
	actor := uuid.New()

	liked, count := p.ToggleLike(actor)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
	assert.True(t, p.LikedBy(actor))

	liked, count = p.ToggleLike(actor)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
	assert.False(t, p.LikedBy(actor))
}

func TestToggleLike_NoDuplicates(t *testing.T) {
	p := &Post{ID: uuid.New(), Likes: []uuid.UUID{}}
	a, b := uuid.New(), uuid.New()

	p.ToggleLike(a)
	p.ToggleLike(b)
	liked, count := p.ToggleLike(a) // a unlikes
	assert.False(t, liked)
	assert.Equal(t, 1, count)

	liked, count = p.ToggleLike(a) // a likes again
	assert.True(t, liked)
	assert.Equal(t, 2, count)
	assert.Len(t, p.Likes, 2)
}

func TestValidate(t *testing.T) {
	p := &Post{Content: "hello"}
	assert.NoError(t, p.Validate())

	p.Content = ""
	assert.EqualError(t, p.Validate(), "content is required")
}

func TestAddComment(t *testing.T) {
	p := &Post{ID: uuid.New()}
	author := uuid.New()
	now := time.Now().UTC()

	c, err := p.AddComment(author, "first!", now)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, author, c.AuthorID)
	assert.Len(t, p.Comments, 1)

	_, err = p.AddComment(author, "", now)
	assert.EqualError(t, err, "comment text is required")
	assert.Len(t, p.Comments, 1)
}

func TestRemoveComment(t *testing.T) {
	p := &Post{ID: uuid.New()}
	now := time.Now().UTC()
	first, _ := p.AddComment(uuid.New(), "one", now)
	second, _ := p.AddComment(uuid.New(), "two", now)

	assert.NoError(t, p.RemoveComment(first.ID))
	assert.Len(t, p.Comments, 1)
	assert.Equal(t, second.ID, p.Comments[0].ID)

	assert.ErrorIs(t, p.RemoveComment(first.ID), ErrCommentNotFound)
}
