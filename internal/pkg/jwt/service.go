package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is what a verified token asserts about its bearer. Email is the
// "email" member of the payload the caller signed in at login; Payload is
// that payload verbatim.
type Identity struct {
	Email   string
	Payload map[string]any
}

type Service interface {
	Issue(payload map[string]any) (string, error)
	Verify(tokenString string) (Identity, error)
}

// HMACService signs HS256 tokens with a single shared secret. The login
// payload is embedded verbatim: nothing about it is validated here.
type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) Issue(payload map[string]any) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	claims := jwtlib.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = jwtlib.NewNumericDate(now)
	claims["exp"] = jwtlib.NewNumericDate(now.Add(s.expiresIn))

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (Identity, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)

	claims := jwtlib.MapClaims{}
	tok, err := p.ParseWithClaims(tokenString, claims, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Identity{}, ErrTokenInvalid
	}

	payload := make(map[string]any, len(claims))
	for k, v := range claims {
		if k == "iat" || k == "exp" {
			continue
		}
		payload[k] = v
	}

	id := Identity{Payload: payload}
	if email, ok := payload["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}
