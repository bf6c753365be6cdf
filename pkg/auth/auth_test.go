package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/auth"
)

type AuthTestSuite struct {
	suite.Suite
	conf    configs.Auth
	now     time.Time
	manager *auth.Manager
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.conf = configs.Auth{
		SecretKey:   "top-secret",
		CookieName:  "session-token",
		SessionTTL:  time.Hour,
		LoginPath:   "/admin/login",
		LandingPath: "/admin",
	}
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.manager = auth.NewAuthManager(suite.conf, zaptest.NewLogger(suite.T())).WithClock(func() time.Time { return suite.now })
}

func (suite *AuthTestSuite) issue() string {
	token, _, err := suite.manager.Issue("admin@example.com")
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) request(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session-token", Value: token})
	}

	return req
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := auth.FromContext(r.Context()); ok {
			w.Header().Set("X-Subject", session.Subject)
		}

		w.WriteHeader(http.StatusOK)
	})
}

func (suite *AuthTestSuite) TestSession_IsValid() {
	session := auth.Session{Subject: "admin", ExpiresAt: suite.now.Add(time.Minute)}
	suite.True(session.IsValid(suite.now))
	suite.False(session.IsValid(suite.now.Add(time.Minute)))
	suite.False(auth.Session{ExpiresAt: suite.now.Add(time.Minute)}.IsValid(suite.now))
}

func (suite *AuthTestSuite) TestParse_RoundTrip() {
	token, issued, err := suite.manager.Issue("admin@example.com")
	suite.Require().NoError(err)
	suite.Equal(suite.now.Add(time.Hour), issued.ExpiresAt)

	session, err := suite.manager.Parse(token)
	suite.Require().NoError(err)
	suite.Equal("admin@example.com", session.Subject)
	suite.True(session.ExpiresAt.Equal(issued.ExpiresAt))
}

func (suite *AuthTestSuite) TestParse_RejectsExpired() {
	token := suite.issue()
	suite.now = suite.now.Add(2 * time.Hour)

	_, err := suite.manager.Parse(token)
	suite.Require().ErrorIs(err, auth.ErrInvalidSession)
}

func (suite *AuthTestSuite) TestParse_RejectsForgedSignature() {
	forger := auth.NewAuthManager(configs.Auth{SecretKey: "guess", SessionTTL: time.Hour}, zaptest.NewLogger(suite.T())).
		WithClock(func() time.Time { return suite.now })
	token, _, err := forger.Issue("admin@example.com")
	suite.Require().NoError(err)

	_, err = suite.manager.Parse(token)
	suite.Require().ErrorIs(err, auth.ErrInvalidSession)
}

func (suite *AuthTestSuite) TestParse_RejectsOtherAlgorithms() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(suite.now.Add(time.Hour)),
	}).SignedString([]byte("top-secret"))
	suite.Require().NoError(err)

	_, err = suite.manager.Parse(token)
	suite.Require().ErrorIs(err, auth.ErrInvalidSession)
}

func (suite *AuthTestSuite) TestParse_RejectsMissingExpiry() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin@example.com"}).
		SignedString([]byte("top-secret"))
	suite.Require().NoError(err)

	_, err = suite.manager.Parse(token)
	suite.Require().ErrorIs(err, auth.ErrInvalidSession)
}

func (suite *AuthTestSuite) TestIssue_RejectsEmptySubject() {
	_, _, err := suite.manager.Issue("")
	suite.Require().ErrorIs(err, auth.ErrInvalidSession)
}

func (suite *AuthTestSuite) TestPageGate_RedirectsAnonymousToLogin() {
	recorder := httptest.NewRecorder()
	suite.manager.PageGate(okHandler()).ServeHTTP(recorder, suite.request("/admin/businesses", ""))

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/admin/login", recorder.Header().Get("Location"))
}

func (suite *AuthTestSuite) TestPageGate_RedirectsExpiredToLogin() {
	token := suite.issue()
	suite.now = suite.now.Add(2 * time.Hour)

	recorder := httptest.NewRecorder()
	suite.manager.PageGate(okHandler()).ServeHTTP(recorder, suite.request("/admin", token))

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/admin/login", recorder.Header().Get("Location"))
}

func (suite *AuthTestSuite) TestPageGate_ServesLoginToAnonymous() {
	recorder := httptest.NewRecorder()
	suite.manager.PageGate(okHandler()).ServeHTTP(recorder, suite.request("/admin/login", ""))

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *AuthTestSuite) TestPageGate_RedirectsSignedInAwayFromLogin() {
	recorder := httptest.NewRecorder()
	suite.manager.PageGate(okHandler()).ServeHTTP(recorder, suite.request("/admin/login", suite.issue()))

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/admin", recorder.Header().Get("Location"))
}

func (suite *AuthTestSuite) TestPageGate_PassesSignedIn() {
	recorder := httptest.NewRecorder()
	suite.manager.PageGate(okHandler()).ServeHTTP(recorder, suite.request("/admin/businesses/1", suite.issue()))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("admin@example.com", recorder.Header().Get("X-Subject"))
}

func (suite *AuthTestSuite) TestAPIGate_RejectsAnonymous() {
	recorder := httptest.NewRecorder()
	suite.manager.APIGate(okHandler()).ServeHTTP(recorder, suite.request("/api/admin/businesses", ""))

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.JSONEq(`{"error":"Unauthorized"}`, recorder.Body.String())
}

func (suite *AuthTestSuite) TestAPIGate_AcceptsBearerToken() {
	req := suite.request("/api/admin/businesses", "")
	req.Header.Set("Authorization", "Bearer "+suite.issue())

	recorder := httptest.NewRecorder()
	suite.manager.APIGate(okHandler()).ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("admin@example.com", recorder.Header().Get("X-Subject"))
}

func (suite *AuthTestSuite) TestCookies() {
	token, session, err := suite.manager.Issue("admin@example.com")
	suite.Require().NoError(err)

	recorder := httptest.NewRecorder()
	suite.manager.SetCookie(recorder, token, session)
	suite.manager.ClearCookie(recorder)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 2)
	suite.Equal("session-token", cookies[0].Name)
	suite.Equal(token, cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
	suite.Equal("", cookies[1].Value)
	suite.Negative(cookies[1].MaxAge)
}
