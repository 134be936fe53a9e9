package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/adherence"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrInvalidSession  = errors.New("invalid workout session")
	ErrInvalidFeedback = errors.New("invalid workout feedback")
)

const (
	MinFeedbackLevel = 1
	MaxFeedbackLevel = 10
)

// Session is a persisted completed workout.
type Session struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"userId"`
	Date               adherence.Date `json:"date"`
	Name               string         `json:"name"`
	DurationMinutes    int            `json:"durationMinutes"`
	ExercisesCompleted int            `json:"exercisesCompleted"`
	TotalExercises     int            `json:"totalExercises"`
	CreatedAt          time.Time      `json:"createdAt"`
}

func (s Session) Validate() error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidSession)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: name missing", ErrInvalidSession)
	}
	if s.DurationMinutes < 0 || s.ExercisesCompleted < 0 || s.TotalExercises < 0 {
		return fmt.Errorf("%w: negative counts", ErrInvalidSession)
	}
	if s.ExercisesCompleted > s.TotalExercises {
		return fmt.Errorf("%w: %d of %d exercises completed", ErrInvalidSession, s.ExercisesCompleted, s.TotalExercises)
	}
	return nil
}

func (s Session) Adherence() adherence.Session {
	return adherence.Session{
		Date:               s.Date,
		Name:               s.Name,
		DurationMinutes:    s.DurationMinutes,
		ExercisesCompleted: s.ExercisesCompleted,
		TotalExercises:     s.TotalExercises,
	}
}

// AdherenceSessions strips the persistence fields off the sessions.
func AdherenceSessions(sessions []Session) []adherence.Session {
	res := make([]adherence.Session, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, s.Adherence())
	}
	return res
}

// Feedback is the lifter's post workout rating. Levels are 1..10, 0 when not given.
type Feedback struct {
	ID                uuid.UUID `json:"id"`
	SessionID         uuid.UUID `json:"sessionId"`
	UserID            uuid.UUID `json:"userId"`
	FatigueLevel      int       `json:"fatigueLevel"`
	PainLevel         int       `json:"painLevel"`
	PerformanceRating int       `json:"performanceRating"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (f Feedback) Validate() error {
	for name, level := range map[string]int{
		"fatigue":     f.FatigueLevel,
		"pain":        f.PainLevel,
		"performance": f.PerformanceRating,
	} {
		if level == 0 {
			continue
		}
		if level < MinFeedbackLevel || level > MaxFeedbackLevel {
			return fmt.Errorf("%w: %s level %d out of range", ErrInvalidFeedback, name, level)
		}
	}
	return nil
}
