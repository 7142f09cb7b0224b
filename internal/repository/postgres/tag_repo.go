package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cattags/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type tagRepository struct {
	DB *sql.DB
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{DB: db}
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, tag FROM cat_tags ORDER BY tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Value); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Exists(ctx context.Context, value string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cat_tags WHERE LOWER(tag) = LOWER($1))`, value).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	err := r.DB.QueryRowContext(ctx, `INSERT INTO cat_tags (tag) VALUES (LOWER($1)) RETURNING id, tag`, tag.Value).Scan(&tag.ID, &tag.Value)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %s: %w", tag.Value, domain.ErrTagExists)
		}
		return err
	}
	return nil
}

func (r *tagRepository) Update(ctx context.Context, oldValue, newValue string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.DB.QueryRowContext(ctx,
		`UPDATE cat_tags SET tag = LOWER($2) WHERE LOWER(tag) = LOWER($1) RETURNING id, tag`,
		oldValue, newValue).Scan(&tag.ID, &tag.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("tag %s: %w", newValue, domain.ErrTagExists)
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Delete(ctx context.Context, value string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM cat_tags WHERE LOWER(tag) = LOWER($1)`, value)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == uniqueViolation
}
