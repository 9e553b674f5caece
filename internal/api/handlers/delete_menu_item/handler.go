package delete_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/service/menu"
)

const (
	msgInvalidID = "некорректный ID позиции меню"
	msgNotFound  = "позиция меню не найдена"
	msgDeleted   = "позиция меню удалена"
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

// Handle DELETE /api/menu/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /menu/{id} - Invalid menu item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	deleted, err := h.service.Delete(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMenuItemNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /menu/{id} - Failed to delete menu item: id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /menu/{id} - Menu item deleted successfully: id=%d", itemID)
	handlers.RespondJSON(w, http.StatusOK, DeleteMenuItemResponse{
		Message:     msgDeleted,
		DeletedItem: deleted,
	})
}
