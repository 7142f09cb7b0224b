package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"cattags/internal/domain"
)

// suggestionCount is how many example tags accompany an InvalidTagError.
const suggestionCount = 3

type tagService struct {
	tagRepo domain.TagRepository
	fetcher domain.PictureFetcher
	intN    func(n int) int
}

// TagServiceOption customizes a tag service.
type TagServiceOption func(*tagService)

// WithRand sets the source used to pick suggestions. intN must return a value in [0, n).
func WithRand(intN func(n int) int) TagServiceOption {
	return func(s *tagService) {
		if intN != nil {
			s.intN = intN
		}
	}
}

// NewTagService creates a TagService backed by the given store and upstream fetcher.
func NewTagService(tagRepo domain.TagRepository, fetcher domain.PictureFetcher, opts ...TagServiceOption) domain.TagService {
	s := &tagService{
		tagRepo: tagRepo,
		fetcher: fetcher,
		intN:    rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *tagService) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		values = append(values, t.Value)
	}
	sort.Strings(values)
	return values, nil
}

func (s *tagService) ListAvailableTags(ctx context.Context) ([]string, error) {
	return s.upstreamTags(ctx)
}

func (s *tagService) GetPicture(ctx context.Context, tag string) (*domain.Picture, error) {
	value, err := requireTag(tag)
	if err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, value); err != nil {
		return nil, err
	}
	picture, err := s.fetcher.RandomPicture(ctx, value)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch picture for %q: %w", value, err)
	}
	return picture, nil
}

func (s *tagService) SaveTag(ctx context.Context, tag string) (*domain.Tag, error) {
	value, err := requireTag(tag)
	if err != nil {
		return nil, err
	}
	if err := s.mustNotExist(ctx, value); err != nil {
		return nil, err
	}
	if err := s.validateUpstream(ctx, value); err != nil {
		return nil, err
	}
	created := domain.NewTag(value)
	if err := s.tagRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to save tag %q: %w", value, err)
	}
	return created, nil
}

func (s *tagService) UpdateTag(ctx context.Context, oldTag, newTag string) (*domain.Tag, error) {
	oldValue, err := requireTag(oldTag)
	if err != nil {
		return nil, err
	}
	newValue, err := requireTag(newTag)
	if err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, oldValue); err != nil {
		return nil, err
	}
	if err := s.mustNotExist(ctx, newValue); err != nil {
		return nil, err
	}
	if err := s.validateUpstream(ctx, newValue); err != nil {
		return nil, err
	}
	updated, err := s.tagRepo.Update(ctx, oldValue, newValue)
	if err != nil {
		return nil, fmt.Errorf("failed to update tag %q: %w", oldValue, err)
	}
	return updated, nil
}

func (s *tagService) DeleteTag(ctx context.Context, tag string) error {
	value, err := requireTag(tag)
	if err != nil {
		return err
	}
	if err := s.mustExist(ctx, value); err != nil {
		return err
	}
	if err := s.tagRepo.Delete(ctx, value); err != nil {
		return fmt.Errorf("failed to delete tag %q: %w", value, err)
	}
	return nil
}

func requireTag(tag string) (string, error) {
	value := domain.NormalizeTag(tag)
	if value == "" {
		return "", fmt.Errorf("%w: tag cannot be empty", domain.ErrInvalidInput)
	}
	return value, nil
}

func (s *tagService) mustExist(ctx context.Context, value string) error {
	ok, err := s.tagRepo.Exists(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to look up tag %q: %w", value, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTagNotFound, value)
	}
	return nil
}

func (s *tagService) mustNotExist(ctx context.Context, value string) error {
	ok, err := s.tagRepo.Exists(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to look up tag %q: %w", value, err)
	}
	if ok {
		return fmt.Errorf("%w: %s", domain.ErrTagExists, value)
	}
	return nil
}

// upstreamTags returns the upstream universe without empty entries.
func (s *tagService) upstreamTags(ctx context.Context) ([]string, error) {
	all, err := s.fetcher.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch tags: %w", err)
	}
	tags := make([]string, 0, len(all))
	for _, t := range all {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: upstream returned no tags", domain.ErrUpstreamUnavailable)
	}
	return tags, nil
}

func (s *tagService) validateUpstream(ctx context.Context, value string) error {
	universe, err := s.upstreamTags(ctx)
	if err != nil {
		return err
	}
	for _, t := range universe {
		if strings.EqualFold(strings.TrimSpace(t), value) {
			return nil
		}
	}
	return &domain.InvalidTagError{Tag: value, Suggestions: s.suggest(universe)}
}

// suggest samples uniformly with replacement, so duplicates are possible.
func (s *tagService) suggest(universe []string) []string {
	out := make([]string, suggestionCount)
	for i := range out {
		out[i] = universe[s.intN(len(universe))]
	}
	return out
}
