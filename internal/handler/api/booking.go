package api

import (
	"errors"
	"net/http"
	"strconv"

	"rentacar/internal/domain/search"
	"rentacar/internal/domain/user"
	"rentacar/internal/handler/dto/request"
	"rentacar/internal/handler/dto/response"
	"rentacar/internal/handler/httperr"
	"rentacar/internal/handler/middleware"
	"rentacar/internal/infra/store"
	"rentacar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Start booking
// @Description Open a booking wizard draft for a vehicle. Search dates from
// @Description the query string seed the dates step; a logged-in profile
// @Description pre-populates personal info.
// @Tags bookings
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param pickupDate query string false "Seed pickup date (YYYY-MM-DD)"
// @Param pickupTime query string false "Seed pickup time (HH:MM)"
// @Param dropoffDate query string false "Seed dropoff date (YYYY-MM-DD)"
// @Param dropoffTime query string false "Seed dropoff time (HH:MM)"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles/{id}/bookings [post]
func (h *BookingHandler) Start(c *gin.Context) {
	vehicleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	seed := search.Criteria{
		PickupLocation: c.Query("pickupLocation"),
		ReturnLocation: c.Query("returnLocation"),
		PickupDate:     c.Query("pickupDate"),
		PickupTime:     c.Query("pickupTime"),
		DropoffDate:    c.Query("dropoffDate"),
		DropoffTime:    c.Query("dropoffTime"),
	}

	var profile *user.User
	if sess, ok := middleware.GetSession(c); ok {
		profile = &sess.User
	}

	draft, err := h.bookingUseCase.StartDraft(c.Request.Context(), vehicleID, seed, profile)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errors.Is(err, usecase.ErrVehicleUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle is not available for booking", nil)
		case errors.Is(err, usecase.ErrVehicleSourceDown), errors.Is(err, usecase.ErrVehicleDataBroken):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Vehicle catalog is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

// @Summary Get booking draft
// @Tags bookings
// @Produce json
// @Param id path string true "Booking draft ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUseCase.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.abortWithDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// @Summary Update booking draft
// @Description Patch the wizard's form fields. Omitted fields keep their
// @Description current value.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking draft ID"
// @Param request body request.UpdateBookingRequest true "Field patch"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var req request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	draft, err := h.bookingUseCase.UpdateDraft(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		h.abortWithDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// @Summary Advance wizard step
// @Description Validate the current step and move forward when it passes.
// @Description The response carries the step reached and any field errors.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking draft ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/next [post]
func (h *BookingHandler) Advance(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUseCase.Advance(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStepInvalid) {
			httperr.AbortWithFieldErrors(c, http.StatusBadRequest, err, draft.Errors)
			return
		}
		h.abortWithDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// @Summary Step back in wizard
// @Tags bookings
// @Produce json
// @Param id path string true "Booking draft ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	draft, err := h.bookingUseCase.Back(c.Request.Context(), id)
	if err != nil {
		h.abortWithDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// @Summary Prefill from profile
// @Description Re-apply the logged-in profile to blank personal fields, for
// @Description a visitor who logged in after starting the draft.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking draft ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/prefill [post]
func (h *BookingHandler) Prefill(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrLoginRequired, "Please log in to continue", nil)
		return
	}

	draft, err := h.bookingUseCase.PrefillProfile(c.Request.Context(), id, sess.User)
	if err != nil {
		h.abortWithDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

// @Summary Confirm booking
// @Description Submit the draft as a reservation. Requires a logged-in
// @Description session; a failed payment validation returns the draft with
// @Description field errors instead of submitting.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking draft ID"
// @Success 200 {object} response.ConfirmResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := h.draftID(c)
	if !ok {
		return
	}

	var sess *store.Session
	if s, logged := middleware.GetSession(c); logged {
		sess = &s
	}

	draft, result, err := h.bookingUseCase.Confirm(c.Request.Context(), id, sess)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDraftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking draft not found", nil)
		case errors.Is(err, usecase.ErrStepInvalid):
			fields := map[string]string{}
			if draft != nil {
				fields = draft.Errors
			}
			httperr.AbortWithFieldErrors(c, http.StatusBadRequest, err, fields)
		case errors.Is(err, usecase.ErrLoginRequired):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Please log in to confirm your booking", nil)
		case errors.Is(err, usecase.ErrAlreadyConfirmed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already confirmed", nil)
		case errors.Is(err, usecase.ErrSubmitInFlight):
			httperr.AbortWithError(c, http.StatusConflict, err, "Confirmation is already in progress", nil)
		case errors.Is(err, usecase.ErrReservationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation could not be created, please try again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmResult(draft, result))
}

func (h *BookingHandler) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) abortWithDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking draft not found", nil)
	case errors.Is(err, usecase.ErrAlreadyConfirmed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already confirmed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
