package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"cattags/internal/delivery/http/helpers"
	"cattags/internal/domain"
)

// TagQuery is the query string for endpoints taking a single tag.
type TagQuery struct {
	Tag string
}

// Bind implements helpers.QueryBinder.
func (q *TagQuery) Bind(v url.Values) {
	q.Tag = v.Get("tag")
}

// Validate implements helpers.Validator.
func (q TagQuery) Validate() []string {
	if strings.TrimSpace(q.Tag) == "" {
		return []string{"Tag cannot be empty"}
	}
	return nil
}

// UpdateTagQuery is the query string for PUT /tags.
type UpdateTagQuery struct {
	OldTag string
	NewTag string
}

// Bind implements helpers.QueryBinder.
func (q *UpdateTagQuery) Bind(v url.Values) {
	q.OldTag = v.Get("oldTag")
	q.NewTag = v.Get("newTag")
}

// Validate implements helpers.Validator.
func (q UpdateTagQuery) Validate() []string {
	if strings.TrimSpace(q.OldTag) == "" || strings.TrimSpace(q.NewTag) == "" {
		return []string{"Tag cannot be empty"}
	}
	return nil
}

// TagListSuccessResponse is the success response envelope for tag lists (200).
type TagListSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PictureSuccessResponse is the success response envelope for GET /tags (200).
type PictureSuccessResponse struct {
	Data  *domain.Picture   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TagSuccessResponse is the success response envelope for POST and PUT /tags.
type TagSuccessResponse struct {
	Data  *domain.Tag       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TagController handles saved tag and picture endpoints.
type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

// NewTagController creates a TagController with the given logger and service.
func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTags godoc
// @Summary List saved tags
// @Description Returns every saved tag value. Does not call the upstream service.
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.TagListSuccessResponse "data contains the saved tag values"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tags/tags [get]
func (c *TagController) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListTags(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// ListAvailableTags godoc
// @Summary List upstream tags
// @Description Returns every tag the upstream image service recognizes, without empty entries.
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.TagListSuccessResponse "data contains the upstream tags"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /tags/available [get]
func (c *TagController) ListAvailableTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListAvailableTags(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// GetPicture godoc
// @Summary Get a random picture for a saved tag
// @Description Returns a random cat picture (id, url, tags) for a tag that has been saved.
// @Tags tags
// @Produce json
// @Param tag query string true "Saved tag"
// @Success 200 {object} controllers.PictureSuccessResponse "data contains the picture"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /tags [get]
func (c *TagController) GetPicture(w http.ResponseWriter, r *http.Request) {
	var q TagQuery
	if !helpers.BindAndValidate(w, r, &q) {
		return
	}
	picture, err := c.Service.GetPicture(r.Context(), q.Tag)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, picture)
}

// SaveTag godoc
// @Summary Save a tag
// @Description Validates the tag against the upstream service and saves it lower-cased. Unknown tags are rejected with three example tags.
// @Tags tags
// @Produce json
// @Param tag query string true "Tag to save"
// @Success 201 {object} controllers.TagSuccessResponse "data contains the created tag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, conflict or invalid_tag"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tags [post]
func (c *TagController) SaveTag(w http.ResponseWriter, r *http.Request) {
	var q TagQuery
	if !helpers.BindAndValidate(w, r, &q) {
		return
	}
	tag, err := c.Service.SaveTag(r.Context(), q.Tag)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tag)
}

// UpdateTag godoc
// @Summary Replace a saved tag
// @Description Replaces oldTag with newTag in place. newTag is validated against the upstream service.
// @Tags tags
// @Produce json
// @Param oldTag query string true "Saved tag to replace"
// @Param newTag query string true "Replacement tag"
// @Success 202 {object} controllers.TagSuccessResponse "data contains the updated tag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, conflict or invalid_tag"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_unavailable"
// @Router /tags [put]
func (c *TagController) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var q UpdateTagQuery
	if !helpers.BindAndValidate(w, r, &q) {
		return
	}
	tag, err := c.Service.UpdateTag(r.Context(), q.OldTag, q.NewTag)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, tag)
}

// DeleteTag godoc
// @Summary Delete a saved tag
// @Tags tags
// @Param tag query string true "Saved tag"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tags [delete]
func (c *TagController) DeleteTag(w http.ResponseWriter, r *http.Request) {
	var q TagQuery
	if !helpers.BindAndValidate(w, r, &q) {
		return
	}
	if err := c.Service.DeleteTag(r.Context(), q.Tag); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteNoContent(w)
}
