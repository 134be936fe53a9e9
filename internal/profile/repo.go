package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
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

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		if errors.Is(err, ErrProfileNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	var p Profile
	if err := r.db.QueryRow(
		ctx,
		`SELECT user_id, name, email, age, height_cm, weight_kg, goal, experience_level, avatar_file, created_at, updated_at
			FROM profile
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Age, &p.HeightCm, &p.WeightKg,
		&p.Goal, &p.ExperienceLevel, &p.AvatarFile, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p.HasAvatar = p.AvatarFile != ""
	return &p, nil
}

// Upsert creates or replaces the profile fields. The avatar is left untouched.
func (r *Repo) Upsert(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID.String()))

	now := time.Now().UTC()
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO profile (user_id, name, email, age, height_cm, weight_kg, goal, experience_level, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			ON CONFLICT (user_id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				age = EXCLUDED.age,
				height_cm = EXCLUDED.height_cm,
				weight_kg = EXCLUDED.weight_kg,
				goal = EXCLUDED.goal,
				experience_level = EXCLUDED.experience_level,
				updated_at = EXCLUDED.updated_at
			RETURNING avatar_file, created_at, updated_at;`,
		p.UserID, p.Name, p.Email, p.Age, p.HeightCm, p.WeightKg, p.Goal, p.ExperienceLevel, now,
	).Scan(&p.AvatarFile, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	p.HasAvatar = p.AvatarFile != ""
	return &p, nil
}

// SetAvatarFile stores the avatar file name, creating an empty profile when
// the user has none yet.
func (r *Repo) SetAvatarFile(ctx context.Context, userID uuid.UUID, avatarFile string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.set-avatar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now().UTC()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO profile (user_id, avatar_file, created_at, updated_at)
			VALUES ($1, $2, $3, $3)
			ON CONFLICT (user_id) DO UPDATE SET
				avatar_file = EXCLUDED.avatar_file,
				updated_at = EXCLUDED.updated_at;`,
		userID, avatarFile, now,
	)
	return err
}
