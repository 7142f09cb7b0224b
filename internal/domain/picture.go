package domain

import "context"

// Picture is a random image returned by the upstream service for a tag.
// swagger:model Picture
type Picture struct {
	ID   string   `json:"id"`
	URL  string   `json:"url"`
	Tags []string `json:"tags"`
}

// PictureFetcher talks to the upstream image service (or a test double).
type PictureFetcher interface {
	// ListTags returns every tag the upstream currently recognizes.
	ListTags(ctx context.Context) ([]string, error)
	// RandomPicture returns a random picture for tag, or ErrPictureNotFound.
	RandomPicture(ctx context.Context, tag string) (*Picture, error)
}
