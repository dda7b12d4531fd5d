package roomSession

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Tokens holds in-memory login tokens for the web front-end. Nothing is
// written anywhere, so a restart logs everyone out.
type Tokens struct {
	store *cache.Cache
	ttl   time.Duration
}

func NewTokens(ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Tokens{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Issue returns a fresh token for email.
func (t *Tokens) Issue(email string) string {
	token := uuid.NewString()
	t.store.Set(token, email, t.ttl)
	return token
}

// Lookup reports the email a live token was issued for.
func (t *Tokens) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	v, found := t.store.Get(token)
	if !found {
		return "", false
	}
	return v.(string), true
}

func (t *Tokens) Revoke(token string) {
	t.store.Delete(token)
}
