package subresource

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImage is assigned to every sub-entity at creation until the owner
// uploads a real picture.
const DefaultImage = "https://picsum.photos/200/300"

// Meta carries the fields every embedded sub-entity shares. Domain types embed
// it so the generic collection operations can address them uniformly.
type Meta struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meta) EntityMeta() *Meta { return m }

// Entity constrains a pointer to any struct embedding Meta.
type Entity[T any] interface {
	*T
	EntityMeta() *Meta
}

// Append assigns a fresh id, stamps created/updated timestamps, defaults the
// image and appends the entity at the end of the collection. Insertion order
// is preserved for display and export.
func Append[T any, PT Entity[T]](col []T, item T, now time.Time) ([]T, T) {
	m := PT(&item).EntityMeta()
	m.ID = uuid.New()
	if m.Image == "" {
		m.Image = DefaultImage
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	return append(col, item), item
}

// Find scans the collection for the entity with the given id. Ids are unique
// by construction, so at most one entry matches.
func Find[T any, PT Entity[T]](col []T, id uuid.UUID) (T, bool) {
	for i := range col {
		if PT(&col[i]).EntityMeta().ID == id {
			return col[i], true
		}
	}
	var zero T
	return zero, false
}

// Update applies merge onto the matching entry and refreshes updated_at,
// leaving created_at untouched. The second return value is the post-merge
// entity; ok is false when the id belongs to no entry.
func Update[T any, PT Entity[T]](col []T, id uuid.UUID, now time.Time, merge func(*T)) ([]T, T, bool) {
	for i := range col {
		if PT(&col[i]).EntityMeta().ID == id {
			merge(&col[i])
			PT(&col[i]).EntityMeta().UpdatedAt = now
			return col, col[i], true
		}
	}
	var zero T
	return col, zero, false
}

// Remove deletes the matching entry, keeping the order of the rest. A missing
// id is reported, never silently ignored.
func Remove[T any, PT Entity[T]](col []T, id uuid.UUID) ([]T, bool) {
	for i := range col {
		if PT(&col[i]).EntityMeta().ID == id {
			return append(col[:i], col[i+1:]...), true
		}
	}
	return col, false
}

// SetImage is the restricted update used by the upload path.
func SetImage[T any, PT Entity[T]](col []T, id uuid.UUID, imageRef string, now time.Time) ([]T, T, bool) {
	return Update[T, PT](col, id, now, func(item *T) {
		PT(item).EntityMeta().Image = imageRef
	})
}

// Project maps each entity to a flat record containing exactly the requested
// fields in order, using the supplied accessor. Unknown fields project to "".
// Pure function, consumed by the CSV export path.
func Project[T any](col []T, fields []string, get func(T, string) string) [][]string {
	records := make([][]string, len(col))
	for i, item := range col {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = get(item, f)
		}
		records[i] = row
	}
	return records
}
