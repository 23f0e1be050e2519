package drafts

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
	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workout"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=drafts

type draftsService interface {
	Get(ctx context.Context, userID int) (*Response, error)
	AddExercises(ctx context.Context, userID int, keys []catalog.Key) (*Response, error)
	RemoveExercise(ctx context.Context, userID, index int) (*Response, error)
	UpdateSets(ctx context.Context, userID, index int, sets []workout.SetEntry, effort *workout.EffortLevel) (*Response, error)
	Clear(ctx context.Context, userID int) (*Response, error)
	Save(ctx context.Context, userID int, now time.Time) (*SaveResponse, error)
}

type Handler struct {
	service draftsService
	now     func() time.Time
}

func NewHandler(service draftsService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

type AddExercisesRequest struct {
	Exercises []struct {
		Type workout.ExerciseType `json:"exercise_type"`
		ID   int                  `json:"exercise_id"`
	} `json:"exercises"`
}

type UpdateSetsRequest struct {
	Sets        []workout.SetEntry   `json:"sets"`
	EffortLevel *workout.EffortLevel `json:"effort_level"`
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	draftRouter := router.PathPrefix("/draft").Subrouter()
	draftRouter.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-draft")
	draftRouter.HandleFunc("", handler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-draft")
	draftRouter.HandleFunc("/exercises", handler.HandleAddExercises).Methods("POST", "OPTIONS").Name("draft-add-exercises")
	draftRouter.HandleFunc("/exercises/{index}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("draft-remove-exercise")
	draftRouter.HandleFunc("/exercises/{index}/sets", handler.HandleUpdateSets).Methods("PUT", "OPTIONS").Name("draft-update-sets")
	draftRouter.HandleFunc("/save", handler.HandleSave).Methods("POST", "OPTIONS").Name("draft-save")
}

func writeDraftError(w http.ResponseWriter, userID int, err error) {
	switch {
	case errors.Is(err, workout.ErrIndexOutOfRange):
		http.Error(w, "exercise not found in draft", http.StatusNotFound)
	case errors.Is(err, ErrUnknownExercise), errors.Is(err, workouts.ErrInvalidSaveRequest),
		errors.Is(err, workout.ErrInvalidMetric):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("draft of user [%d]: %s", userID, err)
		http.Error(w, "failed to update draft, please try again", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	resp, err := handler.service.Get(ctx, session.UserID)
	if err != nil {
		writeDraftError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.clear")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	resp, err := handler.service.Clear(ctx, session.UserID)
	if err != nil {
		writeDraftError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleAddExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.addExercises")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Exercises) == 0 {
		http.Error(w, "invalid exercises payload", http.StatusBadRequest)
		return
	}

	keys := make([]catalog.Key, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		keys = append(keys, catalog.Key{Type: e.Type, ID: e.ID})
	}

	resp, err := handler.service.AddExercises(ctx, session.UserID, keys)
	if err != nil {
		writeDraftError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.removeExercise")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return
	}

	resp, err := handler.service.RemoveExercise(ctx, session.UserID, index)
	if err != nil {
		writeDraftError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleUpdateSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.updateSets")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "invalid exercise index", http.StatusBadRequest)
		return
	}

	var req UpdateSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid sets payload", http.StatusBadRequest)
		return
	}
	if req.Sets == nil {
		req.Sets = []workout.SetEntry{}
	}

	resp, err := handler.service.UpdateSets(ctx, session.UserID, index, req.Sets, req.EffortLevel)
	if err != nil {
		writeDraftError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.save")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	resp, err := handler.service.Save(ctx, session.UserID, handler.now())
	if err != nil {
		workouts.WriteSaveError(w, session.UserID, err)
		return
	}
	pkg.WriteJSON(w, resp, http.StatusCreated)
}
