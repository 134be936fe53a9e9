package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	routineColumns  = `id, user_id, name, description, is_active, total_weeks, created_at`
	dayColumns      = `id, routine_id, week_number, day_number, day_name, is_rest_day, created_at`
	exerciseColumns = `id, workout_day_id, name, sets, reps, weight_kg, rest_seconds, video_url, execution_notes,
		warmup_sets, prep_sets, working_sets, working_reps, exercise_order, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanRoutine(row pgx.CollectableRow) (Routine, error) {
	var r Routine
	err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Description, &r.IsActive, &r.TotalWeeks, &r.CreatedAt)
	return r, err
}

func scanDay(row pgx.CollectableRow) (TrainingDay, error) {
	var d TrainingDay
	err := row.Scan(&d.ID, &d.RoutineID, &d.WeekNumber, &d.DayNumber, &d.Name, &d.IsRestDay, &d.CreatedAt)
	return d, err
}

func scanExercise(row pgx.CollectableRow) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID, &e.DayID, &e.Name, &e.Sets, &e.Reps, &e.WeightKg, &e.RestSeconds, &e.VideoURL, &e.ExecutionNotes,
		&e.WarmupSets, &e.PrepSets, &e.WorkingSets, &e.WorkingReps, &e.Order, &e.CreatedAt,
	)
	return e, err
}

func (r *Repo) ListRoutines(ctx context.Context, userID uuid.UUID) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM workout_routine WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	routines, err := pgx.CollectRows(rows, scanRoutine)
	if err != nil {
		return nil, fmt.Errorf("collect routines: %w", err)
	}
	return routines, nil
}

func (r *Repo) GetRoutine(ctx context.Context, id, userID uuid.UUID) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM workout_routine WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	routine, err := pgx.CollectExactlyOneRow(rows, scanRoutine)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

// GetActiveRoutine returns ErrRoutineNotFound when the user has no active routine.
func (r *Repo) GetActiveRoutine(ctx context.Context, userID uuid.UUID) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get-active")
	defer func() {
		if errors.Is(err, ErrRoutineNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM workout_routine WHERE user_id = $1 AND is_active LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	routine, err := pgx.CollectExactlyOneRow(rows, scanRoutine)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

// AddRoutine stores a new, inactive routine.
func (r *Repo) AddRoutine(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine.ID = uuid.New()
	routine.IsActive = false
	routine.CreatedAt = time.Now().UTC()
	span.SetAttributes(attribute.String("routine.id", routine.ID.String()))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_routine (`+routineColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		routine.ID, routine.UserID, routine.Name, routine.Description, routine.IsActive, routine.TotalWeeks, routine.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &routine, nil
}

// UpdateRoutine changes name, description and total weeks. Activation goes through SetActiveRoutine.
func (r *Repo) UpdateRoutine(ctx context.Context, routine Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routine.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_routine SET name = $1, description = $2, total_weeks = $3 WHERE id = $4 AND user_id = $5;`,
		routine.Name, routine.Description, routine.TotalWeeks, routine.ID, routine.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// DeleteRoutine removes the routine, its days and their exercises.
func (r *Repo) DeleteRoutine(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_routine WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// SetActiveRoutine deactivates all of the user's routines and activates the given one,
// in one transaction, so there is never more than one active routine.
func (r *Repo) SetActiveRoutine(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.set-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	if _, err = tx.Exec(
		ctx,
		`UPDATE workout_routine SET is_active = FALSE WHERE user_id = $1 AND is_active;`,
		userID,
	); err != nil {
		return fmt.Errorf("deactivate routines: %w", err)
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE workout_routine SET is_active = TRUE WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("activate routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

// ListTrainingDays returns the routine's days ordered by week, then day.
func (r *Repo) ListTrainingDays(ctx context.Context, routineID uuid.UUID) (_ []TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list-days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routineID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+dayColumns+` FROM workout_day WHERE routine_id = $1 ORDER BY week_number, day_number;`,
		routineID,
	)
	if err != nil {
		return nil, err
	}

	days, err := pgx.CollectRows(rows, scanDay)
	if err != nil {
		return nil, fmt.Errorf("collect days: %w", err)
	}
	return days, nil
}

// GetTrainingDay returns the day only if its routine belongs to the user.
func (r *Repo) GetTrainingDay(ctx context.Context, id, userID uuid.UUID) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT d.id, d.routine_id, d.week_number, d.day_number, d.day_name, d.is_rest_day, d.created_at
			FROM workout_day d
			JOIN workout_routine r ON r.id = d.routine_id
			WHERE d.id = $1 AND r.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	day, err := pgx.CollectExactlyOneRow(rows, scanDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *Repo) AddTrainingDay(ctx context.Context, day TrainingDay) (_ *TrainingDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day.ID = uuid.New()
	day.CreatedAt = time.Now().UTC()
	span.SetAttributes(
		attribute.String("routine.id", day.RoutineID.String()),
		attribute.String("day.id", day.ID.String()),
	)

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_day (`+dayColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		day.ID, day.RoutineID, day.WeekNumber, day.DayNumber, day.Name, day.IsRestDay, day.CreatedAt,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	return &day, nil
}

func (r *Repo) DeleteTrainingDay(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_day d
			USING workout_routine r
			WHERE d.id = $1 AND r.id = d.routine_id AND r.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// ListExercises returns the exercises of all given days, grouped by day and sorted by exercise order.
func (r *Repo) ListExercises(ctx context.Context, dayIDs []uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days.count", len(dayIDs)))

	if len(dayIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+`
			FROM exercise
			WHERE workout_day_id = ANY($1)
			ORDER BY workout_day_id, exercise_order, created_at;`,
		dayIDs,
	)
	if err != nil {
		return nil, err
	}

	exercises, err := pgx.CollectRows(rows, scanExercise)
	if err != nil {
		return nil, fmt.Errorf("collect exercises: %w", err)
	}
	return exercises, nil
}

// AddExercises stores all exercises or none of them.
func (r *Repo) AddExercises(ctx context.Context, exercises []Exercise) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	if len(exercises) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	now := time.Now().UTC()
	added := make([]Exercise, 0, len(exercises))
	batch := &pgx.Batch{}
	for _, e := range exercises {
		e.ID = uuid.New()
		e.CreatedAt = now
		batch.Queue(
			`INSERT INTO exercise (`+exerciseColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
			e.ID, e.DayID, e.Name, e.Sets, e.Reps, e.WeightKg, e.RestSeconds, e.VideoURL, e.ExecutionNotes,
			e.WarmupSets, e.PrepSets, e.WorkingSets, e.WorkingReps, e.Order, e.CreatedAt,
		)
		added = append(added, e)
	}

	results := tx.SendBatch(ctx, batch)
	for range added {
		if _, err = results.Exec(); err != nil {
			_ = results.Close()
			if pkg.IsForeignKeyViolationError(err) {
				return nil, ErrDayNotFound
			}
			return nil, fmt.Errorf("insert exercise: %w", err)
		}
	}
	if err = results.Close(); err != nil {
		return nil, fmt.Errorf("close batch: %w", err)
	}

	return added, nil
}

// UpdateExercise overwrites the exercise, provided its day belongs to the user.
func (r *Repo) UpdateExercise(ctx context.Context, exercise Exercise, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise e
			SET name = $1, sets = $2, reps = $3, weight_kg = $4, rest_seconds = $5, video_url = $6,
				execution_notes = $7, warmup_sets = $8, prep_sets = $9, working_sets = $10,
				working_reps = $11, exercise_order = $12
			FROM workout_day d
			JOIN workout_routine r ON r.id = d.routine_id
			WHERE e.id = $13 AND d.id = e.workout_day_id AND r.user_id = $14;`,
		exercise.Name, exercise.Sets, exercise.Reps, exercise.WeightKg, exercise.RestSeconds, exercise.VideoURL,
		exercise.ExecutionNotes, exercise.WarmupSets, exercise.PrepSets, exercise.WorkingSets,
		exercise.WorkingReps, exercise.Order,
		exercise.ID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id, userID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete-exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise e
			USING workout_day d, workout_routine r
			WHERE e.id = $1 AND d.id = e.workout_day_id AND r.id = d.routine_id AND r.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
