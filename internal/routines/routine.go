package routines

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/importer"

	"github.com/google/uuid"
)

var (
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrDayNotFound      = errors.New("training day not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidRoutine   = errors.New("invalid routine")
	ErrInvalidDay       = errors.New("invalid training day")
	ErrInvalidExercise  = errors.New("invalid exercise")
)

const (
	MaxTotalWeeks      = 52
	DefaultRestDayName = "Rest"
)

type Routine struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	TotalWeeks  int       `json:"totalWeeks"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r Routine) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name missing", ErrInvalidRoutine)
	}
	if r.TotalWeeks < 1 || r.TotalWeeks > MaxTotalWeeks {
		return fmt.Errorf("%w: total weeks must be within 1..%d", ErrInvalidRoutine, MaxTotalWeeks)
	}
	return nil
}

// TrainingDay is one slot of the routine cycle. DayNumber 1 is Monday, 7 is Sunday.
type TrainingDay struct {
	ID         uuid.UUID `json:"id"`
	RoutineID  uuid.UUID `json:"routineId"`
	WeekNumber int       `json:"weekNumber"`
	DayNumber  int       `json:"dayNumber"`
	Name       string    `json:"name"`
	IsRestDay  bool      `json:"isRestDay"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks the day against the routine it is added to.
func (d TrainingDay) Validate(totalWeeks int) error {
	if d.DayNumber < 1 || d.DayNumber > 7 {
		return fmt.Errorf("%w: day number %d not within 1..7", ErrInvalidDay, d.DayNumber)
	}
	if d.WeekNumber < 1 || d.WeekNumber > totalWeeks {
		return fmt.Errorf("%w: week number %d not within 1..%d", ErrInvalidDay, d.WeekNumber, totalWeeks)
	}
	if d.Name == "" && !d.IsRestDay {
		return fmt.Errorf("%w: name missing", ErrInvalidDay)
	}
	return nil
}

func (d TrainingDay) Adherence() adherence.TrainingDay {
	return adherence.TrainingDay{
		ID:         d.ID.String(),
		WeekNumber: d.WeekNumber,
		DayNumber:  d.DayNumber,
		Name:       d.Name,
		IsRestDay:  d.IsRestDay,
	}
}

// AdherenceDays keeps a nil input nil, the engine reads nil as "no active routine".
func AdherenceDays(days []TrainingDay) []adherence.TrainingDay {
	if days == nil {
		return nil
	}
	res := make([]adherence.TrainingDay, 0, len(days))
	for _, d := range days {
		res = append(res, d.Adherence())
	}
	return res
}

type Exercise struct {
	ID             uuid.UUID `json:"id"`
	DayID          uuid.UUID `json:"dayId"`
	Name           string    `json:"name"`
	Sets           int       `json:"sets"`
	Reps           string    `json:"reps"`
	WeightKg       *float64  `json:"weightKg,omitempty"`
	RestSeconds    int       `json:"restSeconds"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	ExecutionNotes string    `json:"executionNotes,omitempty"`
	WarmupSets     string    `json:"warmupSets,omitempty"`
	PrepSets       string    `json:"prepSets,omitempty"`
	WorkingSets    string    `json:"workingSets,omitempty"`
	WorkingReps    string    `json:"workingReps,omitempty"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (e Exercise) Validate() error {
	switch {
	case e.Name == "":
		return fmt.Errorf("%w: name missing", ErrInvalidExercise)
	case e.Sets < 1:
		return fmt.Errorf("%w: at least one set required", ErrInvalidExercise)
	case e.Reps == "":
		return fmt.Errorf("%w: reps missing", ErrInvalidExercise)
	case e.RestSeconds < 0:
		return fmt.Errorf("%w: negative rest", ErrInvalidExercise)
	case e.WeightKg != nil && *e.WeightKg < 0:
		return fmt.Errorf("%w: negative weight", ErrInvalidExercise)
	}
	return nil
}

// ExerciseFromDraft binds an imported draft to a training day.
// index is the draft's position in the import, it becomes the exercise order.
func ExerciseFromDraft(draft importer.Draft, dayID uuid.UUID, index int) Exercise {
	return Exercise{
		DayID:       dayID,
		Name:        draft.Name,
		Sets:        draft.Sets(),
		Reps:        draft.Reps(),
		WeightKg:    draft.WeightKg,
		RestSeconds: importer.DefaultRestSeconds,
		WarmupSets:  draft.WarmupSets,
		PrepSets:    draft.PrepSets,
		WorkingSets: draft.WorkingSets,
		WorkingReps: draft.WorkingReps,
		Order:       index + 1,
	}
}

// DayDetails is a training day together with its exercises.
type DayDetails struct {
	TrainingDay
	Exercises []Exercise `json:"exercises"`
}

type RoutineDetails struct {
	Routine
	Days []DayDetails `json:"days"`
}

// GroupExercises attaches the exercises to their days, keeping the order of both inputs.
func GroupExercises(days []TrainingDay, exercises []Exercise) []DayDetails {
	byDay := make(map[uuid.UUID][]Exercise, len(days))
	for _, e := range exercises {
		byDay[e.DayID] = append(byDay[e.DayID], e)
	}

	details := make([]DayDetails, 0, len(days))
	for _, d := range days {
		dayExercises := byDay[d.ID]
		if dayExercises == nil {
			dayExercises = []Exercise{}
		}
		details = append(details, DayDetails{
			TrainingDay: d,
			Exercises:   dayExercises,
		})
	}
	return details
}
