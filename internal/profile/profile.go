package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

var experienceLevels = map[string]bool{
	"":             true,
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// Profile is the lifter's personal data. Body measurements are optional.
type Profile struct {
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Age             *int      `json:"age,omitempty"`
	HeightCm        *float64  `json:"heightCm,omitempty"`
	WeightKg        *float64  `json:"weightKg,omitempty"`
	Goal            string    `json:"goal"`
	ExperienceLevel string    `json:"experienceLevel"`
	AvatarFile      string    `json:"-"`
	HasAvatar       bool      `json:"hasAvatar"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p Profile) Validate() error {
	if p.Age != nil && (*p.Age < 1 || *p.Age > 130) {
		return fmt.Errorf("%w: age %d out of range", ErrInvalidProfile, *p.Age)
	}
	if p.HeightCm != nil && (*p.HeightCm <= 0 || *p.HeightCm > 300) {
		return fmt.Errorf("%w: height out of range", ErrInvalidProfile)
	}
	if p.WeightKg != nil && (*p.WeightKg <= 0 || *p.WeightKg > 700) {
		return fmt.Errorf("%w: weight out of range", ErrInvalidProfile)
	}
	if !experienceLevels[p.ExperienceLevel] {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidProfile, p.ExperienceLevel)
	}
	return nil
}
