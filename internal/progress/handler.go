package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/middleware"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	GetProgress(ctx context.Context, userID, exerciseName string, limit int) ([]WorkoutStat, error)
	Resolve(ctx context.Context, userID, query string) (*ResolveResult, error)
	ExerciseNames(ctx context.Context, userID string) ([]string, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	searchRateLimitPerMin int,
	metricsManager *metrics.Manager,
) {
	progressRouter := mainRouter.PathPrefix("/progress").Subrouter()
	progressRouter.HandleFunc("/exercise", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("progress-exercise")
	progressRouter.HandleFunc("/names", handler.HandleExerciseNames).Methods("GET", "OPTIONS").Name("progress-names")

	// fuzzy search scans all the user's exercise names, so it gets its own rate limit
	rateLimitSearch := middleware.RateLimit(rateLimiter, "progress-search", searchRateLimitPerMin, metricsManager)
	progressRouter.Handle("/search", rateLimitSearch(http.HandlerFunc(handler.HandleSearch))).
		Methods("GET", "OPTIONS").Name("progress-search")
}

// HandleExerciseProgress serves GET /progress/exercise?name=<exercise>&limit=<n>
func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseName := r.URL.Query().Get("name")
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(attribute.String("exercise.name", exerciseName))

	stats, err := handler.service.GetProgress(ctx, userID, exerciseName, limit)
	if err != nil {
		writeServiceError(w, err, "get exercise progress")
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

// HandleSearch serves GET /progress/search?q=<free text>
func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.search")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "error, query empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("query", query))

	result, err := handler.service.Resolve(ctx, userID, query)
	if err != nil {
		writeServiceError(w, err, "search exercise progress")
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

// HandleExerciseNames serves GET /progress/names
func (handler *Handler) HandleExerciseNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.names")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	names, err := handler.service.ExerciseNames(ctx, userID)
	if err != nil {
		writeServiceError(w, err, "list exercise names")
		return
	}

	pkg.WriteJSON(w, names, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed, try again later", http.StatusInternalServerError)
	}
}
