package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BusinessFinder/configs"
)

var ErrInvalidSession = errors.New("invalid session")

type SessionKey struct{}

// Session is the administrator capability carried by the session cookie.
type Session struct {
	Subject   string
	ExpiresAt time.Time
}

func (s Session) IsValid(now time.Time) bool {
	return s.Subject != "" && now.Before(s.ExpiresAt)
}

func FromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(SessionKey{}).(Session)

	return session, ok
}

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger, now: time.Now}
}

// WithClock replaces the time source used to issue and check sessions.
func (a *Manager) WithClock(now func() time.Time) *Manager {
	a.now = now

	return a
}

func (a *Manager) Issue(subject string) (string, Session, error) {
	if subject == "" {
		return "", Session{}, fmt.Errorf("%w: empty subject", ErrInvalidSession)
	}

	issuedAt := a.now()
	session := Session{Subject: subject, ExpiresAt: issuedAt.Add(a.conf.SessionTTL)}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	})

	signed, err := token.SignedString([]byte(a.conf.SecretKey))
	if err != nil {
		return "", Session{}, fmt.Errorf("sign session: %w", err)
	}

	return signed, session, nil
}

func (a *Manager) Parse(accessToken string) (Session, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidSession, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())

	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(accessToken, claims, keyFunc); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	if claims.ExpiresAt == nil {
		return Session{}, fmt.Errorf("%w: token has no expiry", ErrInvalidSession)
	}

	session := Session{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
	if !session.IsValid(a.now()) {
		return Session{}, fmt.Errorf("%w: session expired or anonymous", ErrInvalidSession)
	}

	return session, nil
}

// SessionFromRequest reads the session cookie, falling back to a bearer token.
func (a *Manager) SessionFromRequest(r *http.Request) (Session, bool) {
	var accessToken string

	if cookie, err := r.Cookie(a.conf.CookieName); err == nil && cookie.Value != "" {
		accessToken = cookie.Value
	} else if token, found := extractTokenFromHeader(r.Header); found {
		accessToken = token
	}

	if accessToken == "" {
		return Session{}, false
	}

	session, err := a.Parse(accessToken)
	if err != nil {
		a.logger.Debug("rejected session", zap.String("path", r.URL.Path), zap.Error(err))

		return Session{}, false
	}

	return session, true
}

// PageGate redirects anonymous visitors to the login page and signed-in visitors away from it.
func (a *Manager) PageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := a.SessionFromRequest(r)

		if r.URL.Path == a.conf.LoginPath {
			if ok {
				http.Redirect(w, r, a.conf.LandingPath, http.StatusFound)

				return
			}

			next.ServeHTTP(w, r)

			return
		}

		if !ok {
			http.Redirect(w, r, a.conf.LoginPath, http.StatusFound)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), SessionKey{}, session)))
	})
}

// APIGate answers 401 to requests without a valid session.
func (a *Manager) APIGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := a.SessionFromRequest(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), SessionKey{}, session)))
	})
}

func (a *Manager) SetCookie(w http.ResponseWriter, accessToken string, session Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.conf.CookieName,
		Value:    accessToken,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.conf.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func extractTokenFromHeader(header http.Header) (string, bool) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", false
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	return strings.CutPrefix(authorization, prefix)
}
