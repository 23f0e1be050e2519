package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts

type workoutsService interface {
	Save(ctx context.Context, userID int, req SaveRequest, now time.Time) (*SaveResult, error)
	List(ctx context.Context, userID, page, size, offsetMinutes int) (*Page, error)
	Delete(ctx context.Context, userID, workoutID int) error
}

type offsetResolver interface {
	OffsetMinutes(r *http.Request, now time.Time) int
}

type Handler struct {
	service workoutsService
	offsets offsetResolver
	now     func() time.Time
}

func NewHandler(service workoutsService, offsets offsetResolver) *Handler {
	return &Handler{
		service: service,
		offsets: offsets,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	workoutsRouter := router.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	workoutsRouter.HandleFunc("", handler.HandleSave).Methods("POST", "OPTIONS").Name("save-workout")
	workoutsRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

// WriteSaveError maps workout save errors to responses. It is shared with the draft save.
func WriteSaveError(w http.ResponseWriter, userID int, err error) {
	switch {
	case errors.Is(err, ErrWorkoutInvalid):
		http.Error(w, "add at least one set with the required values before saving", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrUnknownExercise), errors.Is(err, ErrInvalidSaveRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("save workout for user [%d]: %s", userID, err)
		http.Error(w, "failed to save workout, please try again", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid workout payload", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Save(ctx, session.UserID, req, handler.now())
	if err != nil {
		WriteSaveError(w, session.UserID, err)
		return
	}

	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	offset := handler.offsets.OffsetMinutes(r, handler.now())
	workoutsPage, err := handler.service.List(ctx, session.UserID, page, size, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidPage) {
			http.Error(w, "invalid page or size", http.StatusBadRequest)
			return
		}
		log.Errorf("list workouts for user [%d]: %s", session.UserID, err)
		http.Error(w, "failed to load workouts, please try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workoutsPage, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, session.UserID, workoutID); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout [%d] for user [%d]: %s", workoutID, session.UserID, err)
		http.Error(w, "failed to delete workout, please try again", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
