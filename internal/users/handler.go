package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type userService interface {
	Register(ctx context.Context, req CreateUserRequest) (*User, error)
}

type Handler struct {
	service userService
}

func NewHandler(service userService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/users", handler.HandleRegister).Methods("POST", "OPTIONS").Name("users-register")
}

type errorsResponse struct {
	Errors []string `json:"errors"`
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register user, unmarshal json: %s", err)
		http.Error(w, "error, invalid user data", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUser):
			resp := errorsResponse{}
			for _, e := range multierr.Errors(err) {
				resp.Errors = append(resp.Errors, e.Error())
			}
			pkg.WriteJSON(w, resp, http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "error, email already taken", http.StatusConflict)
		default:
			log.Errorf("register user: %s", err)
			http.Error(w, "error, register user failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new user registered: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}
