// Package session holds the bearer credential and user record between
// console invocations. The credential is kept verbatim, exactly as issued
// by the user-management service, and is only trusted after its claims
// decode to a non-expired token.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mrconsole/internal/cli/model"
)

var (
	// ErrNoSession is returned when no stored session exists or the stored
	// one was discarded as invalid.
	ErrNoSession = errors.New("no active session: run login first")

	// ErrTokenExpired is returned when the stored credential has expired.
	ErrTokenExpired = errors.New("session expired: run login again")
)

// Claims is the decoded, validated view of the bearer credential. Only the
// fields the console actually relies on are surfaced.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims parses the credential without signature verification (only
// the backends hold the key) and rejects tokens without a future expiry.
func DecodeClaims(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("decoding token: %w", err)
	}
	if tc.ExpiresAt == nil {
		return Claims{}, errors.New("token has no expiry")
	}
	c := Claims{
		Subject:   tc.Subject,
		Role:      tc.Role,
		ExpiresAt: tc.ExpiresAt.Time,
	}
	if !c.ExpiresAt.After(time.Now()) {
		return c, ErrTokenExpired
	}
	return c, nil
}

// Session is an established, validity-checked login.
type Session struct {
	Token  string
	User   model.User
	Claims Claims
}

// Store persists the session under a dedicated directory with 0o600 files.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) tokenPath() string { return filepath.Join(s.dir, "auth_token") }
func (s *Store) userPath() string  { return filepath.Join(s.dir, "user.json") }

// Save validates the credential and writes token and user record. An
// invalid or already expired token is refused and nothing is stored.
func (s *Store) Save(token string, user model.User) error {
	if token == "" {
		return errors.New("empty token")
	}
	if _, err := DecodeClaims(token); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0o600); err != nil {
		return err
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.userPath(), b, 0o600)
}

// Load reads the stored session. A credential that no longer decodes to a
// non-expired token is discarded on the spot, so the next Load starts from
// a clean slate.
func (s *Store) Load() (*Session, error) {
	b, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return nil, ErrNoSession
	}
	token := trimTrailingSpace(b)
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		_ = s.Clear()
		if errors.Is(err, ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrNoSession
	}
	sess := &Session{Token: token, Claims: claims}
	if ub, err := os.ReadFile(s.userPath()); err == nil {
		_ = json.Unmarshal(ub, &sess.User)
	}
	return sess, nil
}

// Token returns the stored credential without the full session record.
// It performs the same validity check as Load.
func (s *Store) Token() (string, error) {
	sess, err := s.Load()
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Clear removes the stored credential and user record.
func (s *Store) Clear() error {
	terr := os.Remove(s.tokenPath())
	uerr := os.Remove(s.userPath())
	if terr != nil && !os.IsNotExist(terr) {
		return terr
	}
	if uerr != nil && !os.IsNotExist(uerr) {
		return uerr
	}
	return nil
}

func trimTrailingSpace(b []byte) string {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b)
}
