package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutService interface {
	Create(ctx context.Context, userID string, req CreateWorkoutRequest) (*Workout, error)
	ListByDate(ctx context.Context, userID string, day time.Time) ([]Workout, error)
}

type Handler struct {
	service workoutService
}

func NewHandler(service workoutService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/workouts", handler.HandleCreate).Methods("POST", "OPTIONS").Name("workouts-create")
	mainRouter.HandleFunc("/workouts", handler.HandleListByDate).Methods("GET", "OPTIONS").Name("workouts-list")
}

type errorsResponse struct {
	Errors []string `json:"errors"`
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("create workout, unmarshal json: %s", err)
		http.Error(w, "error, invalid workout data", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("exercises", len(req.Exercises)))

	workout, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidWorkout):
			resp := errorsResponse{}
			for _, e := range multierr.Errors(err) {
				resp.Errors = append(resp.Errors, e.Error())
			}
			pkg.WriteJSON(w, resp, http.StatusBadRequest)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("create workout: %s", err)
			http.Error(w, "error, create workout failed, try again later", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, workout, http.StatusCreated)
}

// HandleListByDate serves GET /workouts?date=YYYY-MM-DD, date defaults to today
func (handler *Handler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var day time.Time
	if dayStr := r.URL.Query().Get("date"); dayStr != "" {
		var err error
		day, err = ParseDay(dayStr)
		if err != nil {
			http.Error(w, "error, date must be in YYYY-MM-DD format", http.StatusBadRequest)
			return
		}
	}

	workouts, err := handler.service.ListByDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, ErrInvalidWorkout) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("list workouts: %s", err)
		http.Error(w, "error, list workouts failed, try again later", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}
