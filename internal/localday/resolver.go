// Package localday works out which calendar day it is for the caller of a request.
package localday

import (
	"context"
	"fmt"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/2beens/fittrack/internal/adherence"

	log "github.com/sirupsen/logrus"
)

type timezoneLookup interface {
	RequestTimezone(ctx context.Context, r *http.Request) (*time.Location, error)
}

type Resolver struct {
	geo timezoneLookup
	now func() time.Time
}

// NewResolver returns a resolver falling back to geo (may be nil) when the
// request carries neither a date nor a timezone.
func NewResolver(geo timezoneLookup) *Resolver {
	return &Resolver{
		geo: geo,
		now: time.Now,
	}
}

// WithClock replaces the wall clock, used in tests.
func (res *Resolver) WithClock(now func() time.Time) *Resolver {
	res.now = now
	return res
}

// Today resolves the caller's day in this order: the "today" query param (YYYY-MM-DD),
// the "tz" query param (IANA name), the timezone of the caller's IP, UTC.
// Only malformed params are reported as errors.
func (res *Resolver) Today(r *http.Request) (adherence.Date, error) {
	query := r.URL.Query()

	if todayParam := query.Get("today"); todayParam != "" {
		return adherence.ParseDate(todayParam)
	}

	if tz := query.Get("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return adherence.Date{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		return adherence.DateOf(res.now().In(loc)), nil
	}

	if res.geo != nil {
		loc, err := res.geo.RequestTimezone(r.Context(), r)
		if err == nil {
			return adherence.DateOf(res.now().In(loc)), nil
		}
		log.Debugf("resolve today, ip timezone lookup: %s", err)
	}

	return adherence.DateOf(res.now().UTC()), nil
}
