package storage

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// TokenStore holds the bearer token pair under fixed keys. Tokens are
// opaque strings: the store never parses them, and expiry is discovered
// only by a server rejection.
type TokenStore struct {
	store Store
}

// NewTokenStore creates a TokenStore over the given Store.
func NewTokenStore(store Store) *TokenStore {
	return &TokenStore{store: store}
}

// SetPair stores both tokens. The pair is set together so that the
// store never holds one token without the other.
func (t *TokenStore) SetPair(access, refresh string) error {
	if err := t.store.Set(accessTokenKey, access); err != nil {
		return err
	}
	return t.store.Set(refreshTokenKey, refresh)
}

// SetAccess replaces only the access token. The refresh token is left
// unchanged; this is the mid-refresh write.
func (t *TokenStore) SetAccess(access string) error {
	return t.store.Set(accessTokenKey, access)
}

// Access returns the stored access token, or false if none is held.
func (t *TokenStore) Access() (string, bool) {
	return t.get(accessTokenKey)
}

// Refresh returns the stored refresh token, or false if none is held.
func (t *TokenStore) Refresh() (string, bool) {
	return t.get(refreshTokenKey)
}

// Clear removes both tokens.
func (t *TokenStore) Clear() error {
	if err := t.store.Delete(accessTokenKey); err != nil {
		return err
	}
	return t.store.Delete(refreshTokenKey)
}

func (t *TokenStore) get(key string) (string, bool) {
	v, err := t.store.Get(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}
