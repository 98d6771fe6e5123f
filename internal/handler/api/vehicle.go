package api

import (
	"errors"
	"net/http"
	"strconv"

	"rentacar/internal/domain/search"
	"rentacar/internal/handler/dto/response"
	"rentacar/internal/handler/httperr"
	"rentacar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewVehicleHandler(catalogUseCase usecase.CatalogUseCase) *VehicleHandler {
	return &VehicleHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List vehicles
// @Description List the catalog filtered and paginated by the query string
// @Tags vehicles
// @Produce json
// @Param page query int false "Page number"
// @Param fuel query string false "Fuel type filter"
// @Param doors query int false "Door count filter"
// @Param make query string false "Make filter"
// @Param model query string false "Model filter"
// @Param color query string false "Color filter"
// @Param year query int false "Model year filter"
// @Param availability query bool false "Availability filter"
// @Param minPrice query number false "Minimum daily rate"
// @Param maxPrice query number false "Maximum daily rate"
// @Success 200 {object} response.VehicleListResponse
// @Failure 502 {object} httperr.Response
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	query := search.ParseListQuery(c.Request.URL.Query())

	list, err := h.catalogUseCase.ListVehicles(c.Request.Context(), query)
	if err != nil {
		h.abortWithCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVehicleList(list))
}

// @Summary Get vehicle
// @Description Get one vehicle by its numeric id
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	v, err := h.catalogUseCase.GetVehicle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		h.abortWithCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) abortWithCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrVehicleSourceDown):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Vehicle catalog is unavailable", nil)
	case errors.Is(err, usecase.ErrVehicleDataBroken):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Vehicle catalog returned unexpected data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
