package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hotels/internal/hotels/service"
	apperrors "hotels/pkg/errors"
	httputil "hotels/pkg/http"
	"hotels/pkg/logger"
	"hotels/pkg/model"
)

const deletedMessage = "hotel deleted"

type HotelHandler struct {
	service service.HotelService
	log     *logger.Logger
}

func NewHotelHandler(service service.HotelService, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log,
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/hotels", h.List)
	router.POST("/hotels", h.Create)
	router.PUT("/hotels/:id", h.Update)
	router.PUT("/hotels/:id/add-amenity", h.AddAmenity)
	router.PUT("/hotels/:id/remove-amenity", h.RemoveAmenity)
	router.DELETE("/hotels/:id", h.Delete)
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hotels, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, "List", err)
		return
	}

	if err := httputil.WriteSuccess(w, hotels); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var hotel model.Hotel
	if err := httputil.DecodeJSON(r, &hotel); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &hotel); err != nil {
		h.writeError(w, r, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, hotel); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.HotelUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		h.writeError(w, r, "Update", err)
		return
	}

	hotel, err := h.service.Update(r.Context(), ps.ByName("id"), &update)
	if err != nil {
		h.writeError(w, r, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) AddAmenity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.changeAmenity(w, r, ps, "AddAmenity", h.service.AddAmenity)
}

func (h *HotelHandler) RemoveAmenity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.changeAmenity(w, r, ps, "RemoveAmenity", h.service.RemoveAmenity)
}

// changeAmenity writes the updated hotel, or JSON null when the id matched nothing.
func (h *HotelHandler) changeAmenity(
	w http.ResponseWriter,
	r *http.Request,
	ps httprouter.Params,
	name string,
	op func(ctx context.Context, id string, amenity string) (*model.Hotel, error),
) {
	var req model.AmenityRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, name, apperrors.BadRequest("Invalid amenity request", err))
		return
	}

	hotel, err := op(r.Context(), ps.ByName("id"), req.Amenity)
	if err != nil {
		h.writeError(w, r, name, err)
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", name, "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, r, "Delete", err)
		return
	}

	if err := httputil.WriteMessage(w, deletedMessage); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "operation", "WriteMessage", "error", err)
	}
}

func (h *HotelHandler) writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.FromContext(r.Context()).Error("failed to write error response",
			"handler", handler,
			"operation", "WriteError",
			"error", writeErr,
		)
	}
}
