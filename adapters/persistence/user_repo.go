package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoangnp/careernet/internal/domain/user"
	"github.com/hoangnp/careernet/pkg/apperror"
	"github.com/hoangnp/careernet/pkg/logger"
)

// The aggregate persists as a single row: profile columns plus JSONB columns
// for the embedded collections and the social edge sets. Reading and writing
// the row whole is what makes each mutation all-or-nothing; the version
// column is the optimistic concurrency token.
type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, surname, email, bio, title, area, image, password_hash,
	experiences, educations, social, version, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	var experiencesBytes, educationsBytes, socialBytes []byte

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Email,
		&u.Bio,
		&u.Title,
		&u.Area,
		&u.Image,
		&u.PasswordHash,
		&experiencesBytes,
		&educationsBytes,
		&socialBytes,
		&u.Version,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	if err := json.Unmarshal(experiencesBytes, &u.Experiences); err != nil {
		u.Experiences = []user.Experience{}
	}
	if err := json.Unmarshal(educationsBytes, &u.Educations); err != nil {
		u.Educations = []user.Education{}
	}
	if err := json.Unmarshal(socialBytes, &u.Social); err != nil {
		u.Social = user.Social{Friends: []uuid.UUID{}, Sent: []uuid.UUID{}, Pending: []uuid.UUID{}}
	}
	return u, nil
}

func marshalAggregate(u *user.User) (experiences, educations, social []byte, err error) {
	if experiences, err = json.Marshal(u.Experiences); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal experiences: %w", err)
	}
	if educations, err = json.Marshal(u.Educations); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal educations: %w", err)
	}
	if social, err = json.Marshal(u.Social); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal social: %w", err)
	}
	return experiences, educations, social, nil
}

// translatePgError maps constraint failures raised during a write onto the
// client-facing taxonomy: uniqueness -> conflict, check/not-null -> invalid
// input. Anything else is a store failure.
func translatePgError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.NewConflict("email already exists")
		case "23502", "23514":
			return apperror.NewInvalidInput("stored aggregate rejected by schema constraints", err)
		}
	}
	return apperror.NewStore(action, err)
}

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	experiences, educations, social, err := marshalAggregate(u)
	if err != nil {
		return apperror.NewInternal("failed to encode user aggregate", err)
	}

	query := `
		INSERT INTO users (id, name, surname, email, bio, title, area, image, password_hash,
			experiences, educations, social, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.Exec(ctx, query,
		u.ID, u.Name, u.Surname, u.Email, u.Bio, u.Title, u.Area, u.Image, u.PasswordHash,
		experiences, educations, social, u.Version, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err, "failed to save user")
	}
	return nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

const updateUserQuery = `
	UPDATE users SET
		name = $2, surname = $3, email = $4, bio = $5, title = $6, area = $7, image = $8,
		experiences = $9, educations = $10, social = $11,
		version = version + 1, updated_at = $12
	WHERE id = $1 AND version = $13
`

func execUpdateUser(ctx context.Context, tx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}, u *user.User) error {
	experiences, educations, social, err := marshalAggregate(u)
	if err != nil {
		return apperror.NewInternal("failed to encode user aggregate", err)
	}

	cmdTag, err := tx.Exec(ctx, updateUserQuery,
		u.ID, u.Name, u.Surname, u.Email, u.Bio, u.Title, u.Area, u.Image,
		experiences, educations, social, u.UpdatedAt, u.Version,
	)
	if err != nil {
		return translatePgError(err, "failed to update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrVersionConflict
	}
	u.Version++
	return nil
}

func (r *postgresUserRepo) Update(ctx context.Context, u *user.User) error {
	if err := execUpdateUser(ctx, r.db, u); err != nil {
		if errors.Is(err, user.ErrVersionConflict) {
			return r.resolveMissedUpdate(ctx, u.ID)
		}
		return err
	}
	return nil
}

func (r *postgresUserRepo) UpdatePair(ctx context.Context, a, b *user.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewStore("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := execUpdateUser(ctx, tx, a); err != nil {
		if errors.Is(err, user.ErrVersionConflict) {
			return r.resolveMissedUpdate(ctx, a.ID)
		}
		return err
	}
	if err := execUpdateUser(ctx, tx, b); err != nil {
		if errors.Is(err, user.ErrVersionConflict) {
			return r.resolveMissedUpdate(ctx, b.ID)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewStore("failed to commit relationship transaction", err)
	}
	return nil
}

// resolveMissedUpdate tells a vanished row apart from a lost version race.
func (r *postgresUserRepo) resolveMissedUpdate(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return apperror.NewStore("failed to check user existence", err)
	}
	if !exists {
		return user.ErrUserNotFound
	}
	return user.ErrVersionConflict
}

func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewStore("failed to delete user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]*user.User, error) {
	builder := psql.Select(userColumns).
		From("users").
		OrderBy("name ASC, surname ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"surname": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewStore("failed to search users", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.logger.Warn("Skipping unreadable user row", zap.Error(err))
			continue
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStore("error iterating user rows", err)
	}
	return users, nil
}
