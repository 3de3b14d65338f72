// Package clock provides the business clock: the current calendar date
// as observed in the facility's configured timezone.
//
// Membership activity is compared against the business date rather than
// the server's UTC date, so a membership that ends "today" in local time
// is not denied near midnight because UTC has already rolled over.
package clock

import (
	"errors"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

var ErrUnknownTimezone = errors.New("unknown IANA timezone")

type Config struct {
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"` // Timezone is the facility's IANA timezone name.
}

// BusinessClock supplies "now" and "today" to the services. Tests use
// Fixed to pin both.
type BusinessClock interface {
	// Now returns the current instant, used for server-assigned timestamps.
	Now() time.Time
	// Today returns the current business date formatted as YYYY-MM-DD.
	Today() string
}

type businessClock struct {
	loc *time.Location
}

// New returns a BusinessClock for the configured timezone.
func New(cfg Config) (BusinessClock, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, errors.Join(ErrUnknownTimezone, err)
	}
	return &businessClock{loc: loc}, nil
}

func (c *businessClock) Now() time.Time {
	return time.Now().UTC()
}

func (c *businessClock) Today() string {
	return time.Now().In(c.loc).Format(DateLayout)
}

// Fixed is a BusinessClock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
	Date    string
}

func (f Fixed) Now() time.Time { return f.Instant }
func (f Fixed) Today() string  { return f.Date }
