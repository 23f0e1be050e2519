package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog

type catalogService interface {
	Exercises(ctx context.Context, userID int) ([]Exercise, error)
	AddUserExercise(ctx context.Context, userID int, ex NewExercise) (*Exercise, error)
}

type Handler struct {
	service catalogService
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exercises, err := handler.service.Exercises(ctx, session.UserID)
	if err != nil {
		log.Errorf("list exercises for user [%d]: %s", session.UserID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var newExercise NewExercise
	if err := json.NewDecoder(r.Body).Decode(&newExercise); err != nil {
		http.Error(w, "invalid exercise payload", http.StatusBadRequest)
		return
	}

	exercise, err := handler.service.AddUserExercise(ctx, session.UserID, newExercise)
	switch {
	case errors.Is(err, ErrInvalidExercise):
		http.Error(w, "exercise name must have 1 to 100 characters", http.StatusBadRequest)
		return
	case errors.Is(err, ErrExerciseExists):
		http.Error(w, "exercise with that name already exists", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("add exercise for user [%d]: %s", session.UserID, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusCreated)
}
