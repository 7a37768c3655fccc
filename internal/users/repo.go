package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, user *User, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", user.ID))

	var profileImageURL *string
	if user.ProfileImageURL != "" {
		profileImageURL = &user.ProfileImageURL
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (id, email, first_name, last_name, profile_image_url, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at;`,
		user.ID, user.Email, user.FirstName, user.LastName, profileImageURL, passwordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	user := &User{}
	var profileImageURL *string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, first_name, last_name, profile_image_url, created_at
			FROM users
			WHERE id = $1;`,
		id,
	).Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &profileImageURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if profileImageURL != nil {
		user.ProfileImageURL = *profileImageURL
	}

	return user, nil
}

// GetCredentials is used by the auth service on login.
func (r *Repo) GetCredentials(ctx context.Context, email string) (_ string, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID, passwordHash string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, password_hash FROM users WHERE email = $1;`,
		email,
	).Scan(&userID, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}

	return userID, passwordHash, nil
}
