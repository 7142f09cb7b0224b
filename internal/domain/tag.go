package domain

import (
	"context"
	"strings"
)

// Tag is a saved label used to request themed pictures from the upstream service.
// swagger:model Tag
type Tag struct {
	ID    string `json:"id"`
	Value string `json:"tag"`
}

// NewTag returns a Tag holding the normalized value. ID is set by the repository on create.
func NewTag(value string) *Tag {
	return &Tag{Value: NormalizeTag(value)}
}

// NormalizeTag trims and lower-cases a tag before it is compared or stored.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// TagRepository defines storage for saved tags. Values passed in are already normalized.
type TagRepository interface {
	List(ctx context.Context) ([]*Tag, error)
	Exists(ctx context.Context, value string) (bool, error)
	// Create stores the tag and sets its ID. Returns ErrTagExists on a uniqueness violation.
	Create(ctx context.Context, tag *Tag) error
	// Update replaces oldValue with newValue keeping the record ID.
	Update(ctx context.Context, oldValue, newValue string) (*Tag, error)
	Delete(ctx context.Context, value string) error
}

// TagService defines the tag validation and persistence workflow.
type TagService interface {
	ListTags(ctx context.Context) ([]string, error)
	ListAvailableTags(ctx context.Context) ([]string, error)
	GetPicture(ctx context.Context, tag string) (*Picture, error)
	SaveTag(ctx context.Context, tag string) (*Tag, error)
	UpdateTag(ctx context.Context, oldTag, newTag string) (*Tag, error)
	DeleteTag(ctx context.Context, tag string) error
}
