package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ar-top/map-api/internal/api/metrics"
	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

// MapHandler handles HTTP requests for map operations.
type MapHandler struct {
	service ports.MapService
}

func NewMapHandler(service ports.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// Get handles GET /api/map/:id.
//
// @Summary      Get a map by id
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Map id"
// @Success      200  {object}  mapResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/map/{id} [get]
func (h *MapHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	m, err := h.service.GetMap(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMapResponse(m))
}

// List handles GET /api/map — all maps owned by the token's user.
//
// @Summary      List the user's maps
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   mapResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/map [get]
func (h *MapHandler) List(c echo.Context) error {
	maps, err := h.service.ListMaps(c.Request().Context(), ctxToken(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(maps))
}

// Create handles POST /api/map.
//
// @Summary      Create a map
// @Tags         maps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMapRequest  true  "Map fields, all required"
// @Success      200   {object}  mapMutationResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/map [post]
func (h *MapHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createMapRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrMalformedRequest
	}
	// All seven keys must be present; zero values are fine, missing keys are not.
	if err := c.Validate(&req); err != nil {
		return domain.ErrMalformedRequest
	}

	m, err := h.service.CreateMap(c.Request().Context(), claims, toCreateInput(req.Map))
	if err != nil {
		metrics.MapOperationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.MapOperationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusOK, mapMutationResponse{
		Success: "Successfully created map",
		Map:     toMapResponse(m),
	})
}

// Update handles PUT /api/map/:id.
//
// @Summary      Update a map
// @Tags         maps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Map id"
// @Param        body  body      updateMapRequest  true  "Partial map fields"
// @Success      200   {object}  mapMutationResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/map/{id} [put]
func (h *MapHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateMapRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrMalformedRequest
	}
	if req.Map == nil {
		return domain.ErrMalformedRequest
	}

	m, err := h.service.UpdateMap(c.Request().Context(), claims, c.Param("id"), toPatch(req.Map))
	if err != nil {
		metrics.MapOperationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.MapOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, mapMutationResponse{
		Success: "Map updated successfully",
		Map:     toMapResponse(m),
	})
}

// Delete handles DELETE /api/map/:id.
//
// @Summary      Delete a map
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Map id"
// @Success      200  {object}  deleteMapResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/map/{id} [delete]
func (h *MapHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := h.service.DeleteMap(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		metrics.MapOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.MapOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, deleteMapResponse{Success: id})
}
