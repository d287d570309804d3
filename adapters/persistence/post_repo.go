package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/domain/post"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

type postgresPostRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPostRepo(db *pgxpool.Pool, logger logger.Logger) post.Repository {
	return &postgresPostRepo{db: db, logger: logger}
}

const postColumns = `id, owner_id, content, image, likes, comments, version, created_at, updated_at`

func scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var likesBytes, commentsBytes []byte

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Content,
		&p.Image,
		&likesBytes,
		&commentsBytes,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if err := json.Unmarshal(likesBytes, &p.Likes); err != nil {
		p.Likes = []uuid.UUID{}
	}
	if err := json.Unmarshal(commentsBytes, &p.Comments); err != nil {
		p.Comments = []post.Comment{}
	}
	return p, nil
}

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	likes, err := json.Marshal(p.Likes)
	if err != nil {
		return apperror.NewInternal("failed to marshal likes", err)
	}
	comments, err := json.Marshal(p.Comments)
	if err != nil {
		return apperror.NewInternal("failed to marshal comments", err)
	}

	query := `
		INSERT INTO posts (id, owner_id, content, image, likes, comments, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Content, p.Image, likes, comments, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "failed to save post")
	}
	return nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)
	return scanPost(r.db.QueryRow(ctx, query, id))
}

func (r *postgresPostRepo) Update(ctx context.Context, p *post.Post) error {
	likes, err := json.Marshal(p.Likes)
	if err != nil {
		return apperror.NewInternal("failed to marshal likes", err)
	}
	comments, err := json.Marshal(p.Comments)
	if err != nil {
		return apperror.NewInternal("failed to marshal comments", err)
	}

	query := `
		UPDATE posts SET
			content = $2, image = $3, likes = $4, comments = $5,
			version = version + 1, updated_at = $6
		WHERE id = $1 AND version = $7
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Content, p.Image, likes, comments, p.UpdatedAt, p.Version,
	)
	if err != nil {
		return translatePgError(err, "failed to update post")
	}
	if cmdTag.RowsAffected() == 0 {
		return r.resolveMissedPostUpdate(ctx, p.ID)
	}
	p.Version++
	return nil
}

func (r *postgresPostRepo) resolveMissedPostUpdate(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return apperror.NewStore("failed to check post existence", err)
	}
	if !exists {
		return post.ErrPostNotFound
	}
	return post.ErrVersionConflict
}

func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewStore("failed to delete post", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) List(ctx context.Context, limit, offset int) ([]*post.Post, error) {
	sql, args, err := psql.Select(postColumns).
		From("posts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build post list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewStore("failed to list posts", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			r.logger.Warn("Skipping unreadable post row", zap.Error(err))
			continue
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStore("error iterating post rows", err)
	}
	return posts, nil
}

func (r *postgresPostRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, apperror.NewStore("failed to count posts", err)
	}
	return total, nil
}
