package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile

type profileService interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Update(ctx context.Context, userID int, u Update, now time.Time) (*Profile, error)
}

type Handler struct {
	service profileService
}

func NewHandler(service profileService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.service.Get(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for user [%d]: %s", session.UserID, err)
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}

	p, err := handler.service.Update(ctx, session.UserID, update, time.Now())
	switch {
	case errors.Is(err, ErrInvalidProfile):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("update profile for user [%d]: %s", session.UserID, err)
		http.Error(w, "failed to save profile, please try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}
