package history

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
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

// List returns all of the user's sessions, most recent first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_date, workout_name, duration_minutes, exercises_completed, total_exercises, created_at
			FROM workout_history
			WHERE user_id = $1
			ORDER BY workout_date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s           Session
			workoutDate time.Time
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &workoutDate, &s.Name,
			&s.DurationMinutes, &s.ExercisesCompleted, &s.TotalExercises, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Date = adherence.DateOf(workoutDate)
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *Repo) Record(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session.ID = uuid.New()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	span.SetAttributes(
		attribute.String("user.id", session.UserID.String()),
		attribute.String("session.id", session.ID.String()),
	)

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_history
				(id, user_id, workout_date, workout_name, duration_minutes, exercises_completed, total_exercises, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		session.ID, session.UserID, session.Date.Time(), session.Name,
		session.DurationMinutes, session.ExercisesCompleted, session.TotalExercises, session.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &session, nil
}

// Delete removes one session, only if it belongs to the user.
func (r *Repo) Delete(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_history WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteForUser clears the whole history of the user. Feedback rows go with it (on delete cascade).
func (r *Repo) DeleteForUser(ctx context.Context, userID uuid.UUID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.delete-for-user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_history WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// RecordFeedback stores feedback for a session owned by feedback.UserID.
func (r *Repo) RecordFeedback(ctx context.Context, feedback Feedback) (_ *Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.record-feedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", feedback.SessionID.String()))

	feedback.ID = uuid.New()
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_feedback
				(id, workout_history_id, user_id, fatigue_level, pain_level, performance_rating, notes, created_at)
			SELECT $1, wh.id, wh.user_id, $4, $5, $6, $7, $8
				FROM workout_history wh
				WHERE wh.id = $2 AND wh.user_id = $3;`,
		feedback.ID, feedback.SessionID, feedback.UserID,
		nullableLevel(feedback.FatigueLevel), nullableLevel(feedback.PainLevel), nullableLevel(feedback.PerformanceRating),
		feedback.Notes, feedback.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrSessionNotFound
	}

	return &feedback, nil
}

func (r *Repo) ListFeedback(ctx context.Context, sessionID, userID uuid.UUID) (_ []Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list-feedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_history_id, user_id, fatigue_level, pain_level, performance_rating, notes, created_at
			FROM workout_feedback
			WHERE workout_history_id = $1 AND user_id = $2
			ORDER BY created_at;`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}

	feedback, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Feedback, error) {
		var f Feedback
		var fatigue, pain, performance *int
		var notes *string
		if err := row.Scan(&f.ID, &f.SessionID, &f.UserID, &fatigue, &pain, &performance, &notes, &f.CreatedAt); err != nil {
			return f, err
		}
		f.FatigueLevel = derefInt(fatigue)
		f.PainLevel = derefInt(pain)
		f.PerformanceRating = derefInt(performance)
		if notes != nil {
			f.Notes = *notes
		}
		return f, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect feedback rows: %w", err)
	}

	return feedback, nil
}

func nullableLevel(level int) *int {
	if level == 0 {
		return nil
	}
	return &level
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
