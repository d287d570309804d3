package subresource

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type widget struct {
	Meta
	Name string
}

func TestAppend_AssignsIdentityAndDefaults(t *testing.T) {
	now := time.Now().UTC()

	col, created := Append[widget](nil, widget{Name: "first"}, now)

	assert.Len(t, col, 1)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, DefaultImage, created.Image)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestAppend_PreservesInsertionOrderAndUniqueIDs(t *testing.T) {
	now := time.Now().UTC()

	var col []widget
	var a, b, c widget
	col, a = Append[widget](col, widget{Name: "a"}, now)
	col, b = Append[widget](col, widget{Name: "b"}, now)
	col, c = Append[widget](col, widget{Name: "c"}, now)

	assert.Equal(t, []string{"a", "b", "c"}, []string{col[0].Name, col[1].Name, col[2].Name})
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
}

func TestAppend_KeepsProvidedImage(t *testing.T) {
	col, created := Append[widget](nil, widget{Meta: Meta{Image: "custom.png"}, Name: "x"}, time.Now())

	assert.Len(t, col, 1)
	assert.Equal(t, "custom.png", created.Image)
}

func TestFind(t *testing.T) {
	now := time.Now().UTC()
	col, created := Append[widget](nil, widget{Name: "target"}, now)

	found, ok := Find[widget](col, created.ID)
	assert.True(t, ok)
	assert.Equal(t, "target", found.Name)

	_, ok = Find[widget](col, uuid.New())
	assert.False(t, ok)
}

func TestUpdate_MergesAndRefreshesUpdatedAt(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := createdAt.Add(time.Hour)

	col, created := Append[widget](nil, widget{Name: "before"}, createdAt)

	col, updated, ok := Update[widget](col, created.ID, later, func(w *widget) {
		w.Name = "after"
	})

	assert.True(t, ok)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.Equal(t, "after", col[0].Name)
}

func TestUpdate_MissingID(t *testing.T) {
	col, _ := Append[widget](nil, widget{Name: "only"}, time.Now())

	_, _, ok := Update[widget](col, uuid.New(), time.Now(), func(w *widget) {
		w.Name = "never"
	})

	assert.False(t, ok)
	assert.Equal(t, "only", col[0].Name)
}

func TestRemove(t *testing.T) {
	now := time.Now().UTC()
	var col []widget
	var a, b, c widget
	col, a = Append[widget](col, widget{Name: "a"}, now)
	col, b = Append[widget](col, widget{Name: "b"}, now)
	col, c = Append[widget](col, widget{Name: "c"}, now)

	col, ok := Remove[widget](col, b.ID)
	assert.True(t, ok)
	assert.Len(t, col, 2)
	assert.Equal(t, a.ID, col[0].ID)
	assert.Equal(t, c.ID, col[1].ID)

	col, ok = Remove[widget](col, b.ID)
	assert.False(t, ok)
	assert.Len(t, col, 2)
}

func TestSetImage(t *testing.T) {
	now := time.Now().UTC()
	col, created := Append[widget](nil, widget{Name: "pic"}, now)

	col, updated, ok := SetImage[widget](col, created.ID, "https://cdn.example.com/pic.jpg", now.Add(time.Minute))

	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/pic.jpg", updated.Image)
	assert.Equal(t, "pic", updated.Name)
	assert.Equal(t, updated.Image, col[0].Image)
}

func TestProject(t *testing.T) {
	now := time.Now().UTC()
	var col []widget
	col, _ = Append[widget](col, widget{Name: "one"}, now)
	col, _ = Append[widget](col, widget{Name: "two"}, now)

	get := func(w widget, field string) string {
		if field == "name" {
			return w.Name
		}
		return ""
	}

	records := Project(col, []string{"name", "unknown"}, get)

	assert.Equal(t, [][]string{
		{"one", ""},
		{"two", ""},
	}, records)
}

func TestProject_EmptyCollection(t *testing.T) {
	records := Project([]widget{}, []string{"name"}, func(w widget, f string) string { return w.Name })
	assert.Empty(t, records)
}
