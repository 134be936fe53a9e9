package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL        = 24 * 7 * time.Hour
	MinPasswordLength = 6
	sessionKeyPrefix  = "fittrack-session||"
	tokensSetKey      = "fittrack-sessions"
	tokenLength       = 35
)

type usersRepo interface {
	Add(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, string, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
}

// Service is the identity provider: accounts live in postgres,
// sessions in redis.
type Service struct {
	users       usersRepo
	redisClient *redis.Client
	ttl         time.Duration

	// injectable for tests
	RandStringFunc   func(s int) (string, error)
	HashPasswordFunc func(password string) (string, error)
}

func NewService(users usersRepo, ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		users:            users,
		redisClient:      redisClient,
		ttl:              ttl,
		RandStringFunc:   pkg.GenerateRandomString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func (s *Service) SignUp(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sign-up")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := mail.ParseAddress(creds.Email); err != nil || len(creds.Password) < MinPasswordLength {
		return nil, ErrInvalidCredential
	}

	hash, err := s.HashPasswordFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Add(ctx, creds.Email, hash)
}

func (s *Service) SignIn(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sign-in")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, passwordHash, err := s.users.GetByEmail(ctx, creds.Email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrWrongCredentials
	}
	if err != nil {
		return "", err
	}

	if !pkg.CheckPasswordHash(creds.Password, passwordHash) {
		return "", ErrWrongCredentials
	}

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.HSet(ctx, sessionKey,
		"user_id", user.ID.String(),
		"created_at", createdAt.Unix(),
	).Err(); err != nil {
		return "", err
	}

	// add token to the set of sessions, used by ScanAndClean
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *Service) SignOut(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.sign-out")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return err
	}

	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// SessionUserID resolves a token into the signed in user's ID.
func (s *Service) SessionUserID(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := s.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return uuid.Nil, err
	}
	if len(session) == 0 {
		return uuid.Nil, ErrSessionNotFound
	}

	createdAt, err := parseUnix(session["created_at"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("session created at: %w", err)
	}
	if time.Since(createdAt) > s.ttl {
		return uuid.Nil, ErrSessionExpired
	}

	userID, err := uuid.Parse(session["user_id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("session user id: %w", err)
	}

	return userID, nil
}

// CurrentUser returns the user behind the token.
func (s *Service) CurrentUser(ctx context.Context, token string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.current-user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.SessionUserID(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.Get(ctx, userID)
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}
	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		createdAtStr, err := s.redisClient.HGet(ctx, sessionKeyPrefix+token, "created_at").Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if createdAtStr != "" {
			createdAt, err := parseUnix(createdAtStr)
			if err == nil && time.Since(createdAt) <= s.ttl {
				continue
			}
		}

		log.Tracef("auth service, cleaning session: %s", token)
		if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}
}

// ScheduleCleanup runs ScanAndClean on the given cron spec until the returned cron is stopped.
func (s *Service) ScheduleCleanup(ctx context.Context, spec string) (*cron.Cron, error) {
	c := cron.New()
	if err := c.AddFunc(spec, func() {
		s.ScanAndClean(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule session cleanup: %w", err)
	}
	c.Start()
	return c, nil
}

func parseUnix(s string) (time.Time, error) {
	unix, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}
