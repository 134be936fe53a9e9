//go:build integration_test || all_tests

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/adherence"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/dashboard"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/routines"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// do sends a JSON request and decodes the JSON reply into out, when given.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body, out any) int {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if out != nil && resp.StatusCode < 300 {
		s.Require().NoError(json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

func (s *IntegrationTestSuite) signUpAndIn(ctx context.Context) (string, auth.User) {
	creds := auth.Credentials{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	var user auth.User
	s.Require().Equal(http.StatusCreated, s.do(ctx, "POST", "/auth/signup", "", creds, &user))
	s.Equal(creds.Email, user.Email)

	// same email again
	s.Equal(http.StatusConflict, s.do(ctx, "POST", "/auth/signup", "", creds, nil))

	wrong := creds
	wrong.Password = "not-the-password"
	s.Equal(http.StatusUnauthorized, s.do(ctx, "POST", "/auth/signin", "", wrong, nil))

	var signIn auth.SignInResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "POST", "/auth/signin", "", creds, &signIn))
	s.Require().NotEmpty(signIn.Token)

	return signIn.Token, user
}

func (s *IntegrationTestSuite) TestAuthFlow() {
	ctx := context.Background()
	token, user := s.signUpAndIn(ctx)

	var me auth.User
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/auth/me", token, nil, &me))
	s.Equal(user.ID, me.ID)

	s.Equal(http.StatusUnauthorized, s.do(ctx, "GET", "/routines", "", nil, nil))
	s.Equal(http.StatusOK, s.do(ctx, "GET", "/routines", token, nil, nil))

	s.Equal(http.StatusOK, s.do(ctx, "POST", "/auth/signout", token, nil, nil))
	s.Equal(http.StatusUnauthorized, s.do(ctx, "GET", "/auth/me", token, nil, nil))
	s.Equal(http.StatusUnauthorized, s.do(ctx, "GET", "/routines", token, nil, nil))
}

func (s *IntegrationTestSuite) TestWorkoutFlow() {
	ctx := context.Background()
	token, user := s.signUpAndIn(ctx)
	today := adherence.Today(time.UTC)
	todayParam := "?today=" + today.String()

	var active *routines.RoutineDetails
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/routines/active", token, nil, &active))
	s.Nil(active)

	var routine routines.Routine
	s.Require().Equal(http.StatusCreated, s.do(ctx, "POST", "/routines", token, routines.Routine{
		Name:       "Push Pull Legs",
		TotalWeeks: 1,
	}, &routine))
	s.Equal(user.ID, routine.UserID)
	s.False(routine.IsActive)

	var day routines.TrainingDay
	s.Require().Equal(http.StatusCreated, s.do(ctx, "POST", fmt.Sprintf("/routines/%s/days", routine.ID), token, routines.TrainingDay{
		DayNumber: today.ISOWeekday(),
		Name:      "Push",
	}, &day))

	var exercises []routines.Exercise
	s.Require().Equal(http.StatusCreated, s.do(ctx, "POST", fmt.Sprintf("/days/%s/exercises", day.ID), token, []routines.Exercise{
		{Name: "Bench Press", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Overhead Press", Sets: 3, Reps: "10", RestSeconds: 60},
	}, &exercises))
	s.Require().Len(exercises, 2)

	s.Require().Equal(http.StatusOK, s.do(ctx, "POST", fmt.Sprintf("/routines/%s/activate", routine.ID), token, nil, nil))
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/routines/active", token, nil, &active))
	s.Require().NotNil(active)
	s.Equal(routine.ID, active.ID)

	var board dashboard.Dashboard
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/dashboard"+todayParam, token, nil, &board))
	s.Equal(today, board.Today)
	s.Zero(board.CurrentStreak)
	s.Require().NotNil(board.NextWorkout)
	s.Equal("Push", board.NextWorkout.Name)
	s.Equal(2, board.NextWorkout.ExerciseCount)
	s.Len(board.Week, 7)

	yesterday := today.AddDays(-1)
	for _, date := range []adherence.Date{yesterday, today} {
		var recorded history.Session
		s.Require().Equal(http.StatusCreated, s.do(ctx, "POST", "/history"+todayParam, token, history.RecordRequest{
			Date:               &date,
			Name:               "Push",
			DurationMinutes:    45,
			ExercisesCompleted: 2,
			TotalExercises:     2,
		}, &recorded))
		s.Equal(date, recorded.Date)
	}

	var rows int
	s.Require().NoError(s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_history WHERE user_id = $1`, user.ID,
	).Scan(&rows))
	s.Equal(2, rows)

	// the cached dashboard is dropped once the workout event comes back over redis
	s.Require().Eventually(func() bool {
		board = dashboard.Dashboard{}
		return s.do(ctx, "GET", "/dashboard"+todayParam, token, nil, &board) == http.StatusOK &&
			board.CurrentStreak == 2
	}, 5*time.Second, 100*time.Millisecond)
	s.Equal(2, board.LongestStreak)
	s.Require().NotNil(board.LastWorkoutDate)
	s.Equal(today, *board.LastWorkoutDate)
	s.Len(board.RecentSessions, 2)

	var list history.ListResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/history"+todayParam+"&period=week", token, nil, &list))
	s.Equal(2, list.Total)

	var summary history.Summary
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/history/stats"+todayParam, token, nil, &summary))
	s.Equal(2, summary.TotalWorkouts)
	s.Equal(90, summary.TotalDurationMinutes)
	s.Equal(100, summary.CompletionRate)

	var deleted history.DeleteResponse
	s.Require().Equal(http.StatusOK, s.do(ctx, "DELETE", fmt.Sprintf("/history/%s", list.Sessions[0].ID), token, nil, &deleted))
	s.Equal(int64(1), deleted.Deleted)
}

func (s *IntegrationTestSuite) TestProfileFlow() {
	ctx := context.Background()
	token, user := s.signUpAndIn(ctx)

	s.Equal(http.StatusNotFound, s.do(ctx, "GET", "/profile", token, nil, nil))

	age := 29
	var saved map[string]any
	s.Require().Equal(http.StatusOK, s.do(ctx, "PUT", "/profile", token, map[string]any{
		"name":            gofakeit.Name(),
		"age":             age,
		"experienceLevel": "intermediate",
	}, &saved))
	s.Equal(user.ID.String(), saved["userId"])

	var got map[string]any
	s.Require().Equal(http.StatusOK, s.do(ctx, "GET", "/profile", token, nil, &got))
	s.Equal(float64(age), got["age"])
	s.Equal(false, got["hasAvatar"])

	s.Equal(http.StatusNotFound, s.do(ctx, "GET", "/profile/avatar", token, nil, nil))
}

func (s *IntegrationTestSuite) TestDashboardRequiresSession() {
	resp, err := httpClient.Get(serverEndpoint + "/dashboard")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
