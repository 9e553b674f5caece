package create_table_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	createTableBooking "github.com/m04kA/SMC-POSService/internal/usecase/create_table_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "не заполнены обязательные поля"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339 или YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "некорректные данные брони"
	msgTableAlreadyBooked = "стол уже забронирован на выбранное время"
)

type Handler struct {
	useCase CreateTableBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTableBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/table-booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTableBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /table-booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /table-booking - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /table-booking - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTableBooking.ErrTableAlreadyBooked):
			h.logger.Warn("POST /table-booking - Table already booked: table=%d", req.TableNumber)
			handlers.RespondConflict(w, msgTableAlreadyBooked)

		case errors.Is(err, createTableBooking.ErrInvalidInput):
			h.logger.Warn("POST /table-booking - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /table-booking - Failed to book table: table=%d, error=%v", req.TableNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /table-booking - Table booked successfully: booking_id=%d, table=%d",
		result.ID, result.TableNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
