package api

import (
	"errors"
	"net/http"

	"rentacar/internal/handler/dto/response"
	"rentacar/internal/handler/httperr"
	"rentacar/internal/handler/middleware"
	"rentacar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationsUseCase usecase.ReservationsUseCase
}

func NewReservationHandler(reservationsUseCase usecase.ReservationsUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationsUseCase: reservationsUseCase,
	}
}

// @Summary List my reservations
// @Description List the reservations belonging to the logged-in user
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} response.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Please log in to continue", nil)
		return
	}

	list, err := h.reservationsUseCase.ListForUser(c.Request.Context(), sess.User.ID)
	if err != nil {
		h.abortWithReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(list))
}

// @Summary Cancel reservation
// @Description Delete one of the logged-in user's reservations
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionNotFound, "Please log in to continue", nil)
		return
	}

	if err := h.reservationsUseCase.Delete(c.Request.Context(), c.Param("id"), sess.User.ID); err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		h.abortWithReservationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) abortWithReservationError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrRentalAPIDown) {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation service is unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
