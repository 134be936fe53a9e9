package geoip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	cacheKeyPrefix = "ip-info::"
	cacheTTL       = 24 * time.Hour
)

var ErrTimezoneUnknown = errors.New("timezone unknown")

//go:generate mockgen -source=$GOFILE -destination=api_mocks_test.go -package=geoip_test

type ipInfoClient interface {
	GetIPInfo(ip net.IP) (*ipinfo.Core, error)
}

// Api resolves the timezone of a caller's IP through ipinfo.io,
// caching the answers in redis.
type Api struct {
	mu          sync.Mutex
	client      ipInfoClient
	redisClient *redis.Client
	ipReader    *pkg.ClientIPReader
}

func NewApi(token string, httpClient *http.Client, redisClient *redis.Client) *Api {
	return NewApiWithClient(ipinfo.NewClient(httpClient, nil, token), redisClient)
}

func NewApiWithClient(client ipInfoClient, redisClient *redis.Client) *Api {
	return &Api{
		client:      client,
		redisClient: redisClient,
	}
}

// WithIPReader sets the reader of the caller's IP, so the proxy headers
// of trusted proxies are honoured.
func (gi *Api) WithIPReader(ipReader *pkg.ClientIPReader) *Api {
	gi.ipReader = ipReader
	return gi
}

// RequestTimezone returns the location of the request's caller.
func (gi *Api) RequestTimezone(ctx context.Context, r *http.Request) (*time.Location, error) {
	userIp, err := gi.ipReader.ReadUserIP(r)
	if err != nil {
		return nil, fmt.Errorf("get user ip: %w", err)
	}
	return gi.Timezone(ctx, userIp)
}

func (gi *Api) Timezone(ctx context.Context, userIp string) (_ *time.Location, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geoip.timezone")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", userIp))

	// local development, caller and server share the machine
	if userIp == pkg.LocalhostIP {
		return time.Local, nil
	}

	ip := net.ParseIP(userIp)
	if ip == nil {
		return nil, fmt.Errorf("invalid ip: %s", userIp)
	}

	// the dashboard opens a few requests at once, all from the same ip,
	// serialize them so only the first one reaches ipinfo
	gi.mu.Lock()
	defer gi.mu.Unlock()

	cacheKey := cacheKeyPrefix + userIp
	tzName, err := gi.redisClient.Get(ctx, cacheKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Errorf("failed to get cached ip info for [%s]: %s", cacheKey, err)
	}

	if tzName != "" {
		span.SetAttributes(attribute.Bool("user.ip.from-cache", true))
		if loc, err := time.LoadLocation(tzName); err == nil {
			return loc, nil
		}
		log.Errorf("cached timezone for %s is invalid: %s", userIp, tzName)
	}
	span.SetAttributes(attribute.Bool("user.ip.from-cache", false))

	log.Debugf("will ask ipinfo for ip timezone: %s", userIp)
	info, err := gi.client.GetIPInfo(ip)
	if err != nil {
		return nil, fmt.Errorf("get ip info: %w", err)
	}
	if info == nil || info.Timezone == "" {
		return nil, ErrTimezoneUnknown
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", info.Timezone, err)
	}

	if err := gi.redisClient.Set(ctx, cacheKey, info.Timezone, cacheTTL).Err(); err != nil {
		log.Errorf("failed to cache ip info in redis for %s: %s", userIp, err)
	}

	return loc, nil
}
