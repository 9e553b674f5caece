package get_menu_image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/service/menu"
)

const (
	msgInvalidID     = "некорректный ID позиции меню"
	msgItemNotFound  = "позиция меню не найдена"
	msgImageNotFound = "изображение не найдено"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/menu/{id}/image
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /menu/{id}/image - Invalid menu item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	image, err := h.service.GetImage(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMenuItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, menu.ErrImageNotFound):
			handlers.RespondNotFound(w, msgImageNotFound)

		default:
			h.logger.Error("GET /menu/{id}/image - Failed to get image: id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		h.logger.Warn("GET /menu/{id}/image - Failed to write image: id=%d, error=%v", itemID, err)
	}
}
