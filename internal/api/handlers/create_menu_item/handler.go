package create_menu_item

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/service/menu"
	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

const (
	msgInvalidForm  = "некорректная multipart форма"
	msgInvalidPrice = "некорректная цена"
	msgInvalidItem  = "название и категория обязательны, цена не может быть отрицательной"

	formFieldImage = "image"
)

type Handler struct {
	service        MenuService
	logger         Logger
	maxUploadBytes int64
}

// NewHandler maxUploadBytes ограничивает размер всей формы вместе с изображением
func NewHandler(service MenuService, logger Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Handle POST /api/menu (multipart: name, category, price, image)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.logger.Warn("POST /menu - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer r.MultipartForm.RemoveAll()

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil {
		h.logger.Warn("POST /menu - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	image, err := readImage(r)
	if err != nil {
		h.logger.Warn("POST /menu - Failed to read image: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	item, err := h.service.Create(r.Context(), &models.CreateMenuItemInput{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Price:    price,
		Image:    image,
	})
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidInput):
			h.logger.Warn("POST /menu - Invalid menu item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("POST /menu - Failed to create menu item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /menu - Menu item created successfully: id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// readImage читает необязательный файл изображения из формы
func readImage(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile(formFieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
