package cataas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cattags/internal/domain"
)

type cataasHTTPFetcher struct {
	client  *http.Client
	baseURL *url.URL
}

// NewHTTPFetcher returns a fetcher that calls the cataas API rooted at baseURL.
func NewHTTPFetcher(client *http.Client, baseURL string) (domain.PictureFetcher, error) {
	if client == nil {
		client = http.DefaultClient
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q: scheme and host are required", baseURL)
	}
	return &cataasHTTPFetcher{client: client, baseURL: u}, nil
}

// picturePayload is the /cat/{tag}?json=true response. Older deployments send _id.
type picturePayload struct {
	ID       string   `json:"id"`
	LegacyID string   `json:"_id"`
	URL      string   `json:"url"`
	Tags     []string `json:"tags"`
}

func (f *cataasHTTPFetcher) ListTags(ctx context.Context) ([]string, error) {
	resp, err := f.get(ctx, "/api/tags", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cataas api returned status: %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var tags []string
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cataas tags: %v", domain.ErrUpstreamUnavailable, err)
	}
	return tags, nil
}

func (f *cataasHTTPFetcher) RandomPicture(ctx context.Context, tag string) (*domain.Picture, error) {
	resp, err := f.get(ctx, "/cat/"+url.PathEscape(tag), url.Values{"json": {"true"}})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrPictureNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: cataas api returned status: %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var data picturePayload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode cataas picture: %v", domain.ErrUpstreamUnavailable, err)
	}
	id := data.ID
	if id == "" {
		id = data.LegacyID
	}
	if data.Tags == nil {
		data.Tags = []string{}
	}
	return &domain.Picture{ID: id, URL: f.absolute(data.URL, id), Tags: data.Tags}, nil
}

func (f *cataasHTTPFetcher) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := f.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch from cataas: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// absolute resolves the picture URL against the base URL. When cataas omits the
// url it falls back to /cat/{id}.
func (f *cataasHTTPFetcher) absolute(raw, id string) string {
	if raw == "" {
		if id == "" {
			return ""
		}
		return f.baseURL.JoinPath("cat", id).String()
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return f.baseURL.ResolveReference(ref).String()
}
