package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"praxis/internal/domain"
)

type NewsRepo struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepo {
	return &NewsRepo{
		db: db,
	}
}

const newsColumns = `id, slug, title_de, title_en, content_de, content_en, image_url, published, published_at, created_at, updated_at`

func (r *NewsRepo) Create(ctx context.Context, post domain.NewsPost) (string, error) {
	now := time.Now()
	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO news_posts (slug, title_de, title_en, content_de, content_en, image_url, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`,
		post.Slug,
		post.TitleDe,
		post.TitleEn,
		post.ContentDe,
		post.ContentEn,
		post.ImageURL,
		post.Published,
		post.PublishedAt,
		now,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.ErrSlugTaken
		}
		return "", fmt.Errorf("inserting news post: %w", err)
	}
	return id, nil
}

func (r *NewsRepo) GetByID(ctx context.Context, id string) (*domain.NewsPost, error) {
	query := `SELECT ` + newsColumns + ` FROM news_posts WHERE id = $1`

	post, err := scanNewsPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching news post: %w", err)
	}
	return post, nil
}

func (r *NewsRepo) GetBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	query := `SELECT ` + newsColumns + ` FROM news_posts WHERE slug = $1`

	post, err := scanNewsPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching news post by slug: %w", err)
	}
	return post, nil
}

func (r *NewsRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM news_posts WHERE slug = $1 AND id != $2
	`, slug, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return count > 0, nil
}

func (r *NewsRepo) Update(ctx context.Context, post domain.NewsPost) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE news_posts
		SET slug = $1, title_de = $2, title_en = $3, content_de = $4, content_en = $5,
		    published = $6, published_at = $7, updated_at = $8
		WHERE id = $9
	`,
		post.Slug,
		post.TitleDe,
		post.TitleEn,
		post.ContentDe,
		post.ContentEn,
		post.Published,
		post.PublishedAt,
		time.Now(),
		post.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("updating news post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NewsRepo) UpdateImageURL(ctx context.Context, id string, imageURL *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE news_posts SET image_url = $1, updated_at = $2 WHERE id = $3
	`, imageURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating news post image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NewsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM news_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting news post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NewsRepo) List(ctx context.Context, publishedOnly bool) ([]domain.NewsPost, error) {
	query := `SELECT ` + newsColumns + ` FROM news_posts`
	if publishedOnly {
		query += " WHERE published ORDER BY published_at DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing news posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.NewsPost
	for rows.Next() {
		post, err := scanNewsPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning news post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading news post rows: %w", err)
	}

	return posts, nil
}

func scanNewsPost(row pgx.Row) (*domain.NewsPost, error) {
	var post domain.NewsPost
	err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.TitleDe,
		&post.TitleEn,
		&post.ContentDe,
		&post.ContentEn,
		&post.ImageURL,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
