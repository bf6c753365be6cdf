package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"droscher.com/BusinessFinder/pkg/auth"
)

type SessionServer struct {
	logger *zap.Logger
	auth   *auth.Manager
}

func NewSessionServer(authManager *auth.Manager, logger *zap.Logger) *SessionServer {
	return &SessionServer{auth: authManager, logger: logger}
}

type sessionRequest struct {
	Token string `json:"token"`
}

type sessionResponse struct {
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignIn serves POST /api/admin/session and stores a previously issued token in the session cookie.
func (s *SessionServer) SignIn(w http.ResponseWriter, r *http.Request) {
	var request sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Token == "" {
		writeJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})

		return
	}

	session, err := s.auth.Parse(request.Token)
	if err != nil {
		s.logger.Info("rejected sign in", zap.Error(err))
		writeJSON(w, s.logger, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})

		return
	}

	s.auth.SetCookie(w, request.Token, session)
	writeJSON(w, s.logger, http.StatusOK, sessionResponse{Subject: session.Subject, ExpiresAt: session.ExpiresAt})
}

// SignOut serves DELETE /api/admin/session.
func (s *SessionServer) SignOut(w http.ResponseWriter, _ *http.Request) {
	s.auth.ClearCookie(w)
	writeJSON(w, s.logger, http.StatusOK, successResponse{Success: true})
}
