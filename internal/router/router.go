package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetGuestReservations(c *ginext.Context)
	GetHostReservations(c *ginext.Context)
	GetGuestPayments(c *ginext.Context)

	CreateCaravan(c *ginext.Context)
	ListCaravans(c *ginext.Context)
	GetCaravan(c *ginext.Context)
	CreateReview(c *ginext.Context)
	ListReviews(c *ginext.Context)

	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
	PayReservation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/reservations", h.GetGuestReservations)
		api.GET("/users/:id/host-reservations", h.GetHostReservations)
		api.GET("/users/:id/payments", h.GetGuestPayments)

		// Caravans
		api.POST("/caravans", h.CreateCaravan)
		api.GET("/caravans", h.ListCaravans)
		api.GET("/caravans/:id", h.GetCaravan)
		api.POST("/caravans/:id/reviews", h.CreateReview)
		api.GET("/caravans/:id/reviews", h.ListReviews)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
		api.POST("/reservations/:id/payment", h.PayReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
