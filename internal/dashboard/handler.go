package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/volume"
	"github.com/2beens/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard

const rangeParam = "range"

type dashboardService interface {
	Volume(ctx context.Context, userID int, tr volume.TimeRange, now time.Time, offsetMinutes int) ([]volume.Bucket, error)
	Summary(ctx context.Context, userID int, tr volume.TimeRange, now time.Time, offsetMinutes int) (*Summary, error)
}

type offsetResolver interface {
	OffsetMinutes(r *http.Request, now time.Time) int
}

type Handler struct {
	service dashboardService
	offsets offsetResolver
	now     func() time.Time
}

func NewHandler(service dashboardService, offsets offsetResolver) *Handler {
	return &Handler{
		service: service,
		offsets: offsets,
		now:     time.Now,
	}
}

type VolumeResponse struct {
	Range   volume.TimeRange `json:"range"`
	Buckets []volume.Bucket  `json:"buckets"`
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", handler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard")
	router.HandleFunc("/dashboard/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("dashboard-volume")
}

// timeRange reads the range query param, defaulting to the last 7 days.
func timeRange(r *http.Request) (volume.TimeRange, error) {
	raw := r.URL.Query().Get(rangeParam)
	if raw == "" {
		return volume.Days, nil
	}
	return volume.ParseTimeRange(raw)
}

func writeVolumeError(w http.ResponseWriter, userID int, err error) {
	if errors.Is(err, volume.ErrMalformedDate) {
		log.Errorf("dashboard volume for user [%d], malformed data: %s", userID, err)
	} else {
		log.Errorf("dashboard volume for user [%d]: %s", userID, err)
	}
	http.Error(w, "failed to load volume data", http.StatusInternalServerError)
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.volume")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	tr, err := timeRange(r)
	if err != nil {
		http.Error(w, "unknown range, use one of: 7days, 8weeks, 12months", http.StatusBadRequest)
		return
	}

	now := handler.now()
	buckets, err := handler.service.Volume(ctx, session.UserID, tr, now, handler.offsets.OffsetMinutes(r, now))
	if err != nil {
		writeVolumeError(w, session.UserID, err)
		return
	}

	pkg.WriteJSON(w, VolumeResponse{Range: tr, Buckets: buckets}, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	tr, err := timeRange(r)
	if err != nil {
		http.Error(w, "unknown range, use one of: 7days, 8weeks, 12months", http.StatusBadRequest)
		return
	}

	now := handler.now()
	summary, err := handler.service.Summary(ctx, session.UserID, tr, now, handler.offsets.OffsetMinutes(r, now))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		writeVolumeError(w, session.UserID, err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}
