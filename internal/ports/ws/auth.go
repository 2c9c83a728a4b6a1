package ws

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var ErrUnauthorized = errors.New("unauthorized")

// Identity is the player a session token was issued for.
type Identity struct {
	UserID   string
	Username string
}

// Authenticator issues and verifies HS256 session tokens carrying the
// claims uid and usr.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for id that expires after ttl.
func (a *Authenticator) Issue(id Identity, ttl time.Duration) (string, error) {
	if id.UserID == "" {
		return "", fmt.Errorf("issue token: user id is required")
	}
	claims := jwt.MapClaims{
		"uid": id.UserID,
		"usr": id.Username,
		"iat": a.now().Unix(),
		"exp": a.now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify parses tokenString and returns the identity it carries. Any
// failure is reported as ErrUnauthorized.
func (a *Authenticator) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		return Identity{}, fmt.Errorf("%w: uid claim missing", ErrUnauthorized)
	}
	usr, _ := claims["usr"].(string)
	if usr == "" {
		usr = uid
	}
	return Identity{UserID: uid, Username: usr}, nil
}
