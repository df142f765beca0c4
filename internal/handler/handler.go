package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CaravanSvc interface {
	Create(ctx context.Context, input domain.CreateCaravanInput) (*domain.Caravan, error)
	GetByID(ctx context.Context, id string) (*domain.Caravan, error)
	List(ctx context.Context) ([]*domain.Caravan, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, decision domain.Decision) (*domain.Reservation, error)
	ConfirmPayment(ctx context.Context, id string) (*domain.Reservation, *domain.Payment, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error)
}

type PaymentSvc interface {
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Payment, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByCaravan(ctx context.Context, caravanID string) ([]*domain.Review, error)
}

type Handler struct {
	userService        UserSvc
	caravanService     CaravanSvc
	reservationService ReservationSvc
	paymentService     PaymentSvc
	reviewService      ReviewSvc
}

func NewHandler(
	userService UserSvc,
	caravanService CaravanSvc,
	reservationService ReservationSvc,
	paymentService PaymentSvc,
	reviewService ReviewSvc,
) *Handler {
	return &Handler{
		userService:        userService,
		caravanService:     caravanService,
		reservationService: reservationService,
		paymentService:     paymentService,
		reviewService:      reviewService,
	}
}

// pathID достаёт id из пути и отвечает 400, если это не uuid.
func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(users, dto.ToUserResponse))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) GetGuestReservations(c *ginext.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByGuest(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(reservations, dto.ToReservationResponse))
}

func (h *Handler) GetHostReservations(c *ginext.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByHost(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(reservations, dto.ToReservationResponse))
}

func (h *Handler) GetGuestPayments(c *ginext.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByGuest(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(payments, dto.ToPaymentResponse))
}

// Caravans

func (h *Handler) CreateCaravan(c *ginext.Context) {
	var req dto.CreateCaravanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	caravan, err := h.caravanService.Create(c.Request.Context(), domain.CreateCaravanInput{
		HostID:      req.HostID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCaravanResponse(caravan))
}

func (h *Handler) ListCaravans(c *ginext.Context) {
	caravans, err := h.caravanService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(caravans, dto.ToCaravanResponse))
}

func (h *Handler) GetCaravan(c *ginext.Context) {
	id, ok := pathID(c, "caravan")
	if !ok {
		return
	}

	caravan, err := h.caravanService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCaravanResponse(caravan))
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	caravanID, ok := pathID(c, "caravan")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), domain.CreateReviewInput{
		CaravanID: caravanID,
		GuestID:   req.GuestID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListReviews(c *ginext.Context) {
	caravanID, ok := pathID(c, "caravan")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByCaravan(c.Request.Context(), caravanID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(reviews, dto.ToReviewResponse))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), domain.CreateReservationInput{
		CaravanID: req.CaravanID,
		GuestID:   req.GuestID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reservation, err := h.reservationService.UpdateStatus(c.Request.Context(), id, domain.Decision(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) PayReservation(c *ginext.Context) {
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	reservation, payment, err := h.reservationService.ConfirmPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Reservation: dto.ToReservationResponse(reservation),
		Payment:     dto.ToPaymentResponse(payment),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
