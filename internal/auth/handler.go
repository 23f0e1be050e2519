package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth

type authService interface {
	Register(ctx context.Context, credentials Credentials) (*User, error)
	Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	service        authService
	metricsManager *metrics.Manager
}

func NewHandler(service authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

func (handler *Handler) SetupRoutes(router *mux.Router, limiter func(http.Handler) http.Handler) {
	authRouter := router.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")

	// rate limit the /a endpoints to prevent abuse
	if limiter != nil {
		authRouter.Use(limiter)
	}
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var credentials Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			return Credentials{}, err
		}
		return credentials, nil
	}

	if err := r.ParseForm(); err != nil {
		return Credentials{}, err
	}
	return Credentials{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Errorf("login, decode credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.service.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			handler.countLogin("wrong_credentials")
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		handler.countLogin("error")
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed, please try again", http.StatusInternalServerError)
		return
	}

	handler.countLogin("ok")
	log.Tracef("new login success: %s", credentials.Username)
	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Errorf("register, decode credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Register(ctx, credentials)
	switch {
	case errors.Is(err, ErrInvalidUsername):
		http.Error(w, "error, username must be 3 to 50 letters, digits, dots, dashes or underscores", http.StatusBadRequest)
		return
	case errors.Is(err, ErrPasswordTooShort):
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	case errors.Is(err, ErrUsernameTaken):
		http.Error(w, "error, username taken", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("register failed: %s", err)
		http.Error(w, "register failed, please try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, RegisterResponse{ID: user.ID, Username: user.Username}, http.StatusCreated)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	session, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.service.Logout(ctx, session.Token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	log.Tracef("logout for user [%d] success", session.UserID)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}
