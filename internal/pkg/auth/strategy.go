package auth

import "time"

// Strategy issues and verifies bearer tokens carrying a user id.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token strategies.
type Options struct {
	TTL time.Duration
	// Now overrides the clock, mainly in tests.
	Now func() time.Time
}

const defaultTTL = 24 * time.Hour

func (o Options) normalized() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
