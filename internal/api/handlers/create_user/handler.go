package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUser        = "имя пользователя, пароль и роль обязательны"
	msgUsernameTaken      = "имя пользователя уже занято"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /users - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUser)
		return
	}

	user, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUser)

		case errors.Is(err, users.ErrUsernameTaken):
			h.logger.Warn("POST /users - Username already taken: %s", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
