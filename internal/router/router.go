package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	ClaimSlot(c *ginext.Context)
	CreateBlock(c *ginext.Context)
	ListBlocks(c *ginext.Context)
	DeleteBlock(c *ginext.Context)
	CheckVariantAvailability(c *ginext.Context)
	ListOwnerVariants(c *ginext.Context)
	UpdateRental(c *ginext.Context)
	GetRental(c *ginext.Context)
	ListOwnerRentals(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Fitting slots
		api.GET("/owners/:id/slots", h.ListSlots)
		api.POST("/owners/:id/slots", h.CreateSlot)
		api.POST("/slots/:id/claim", h.ClaimSlot)

		// Schedule blocks
		api.GET("/owners/:id/blocks", h.ListBlocks)
		api.POST("/owners/:id/blocks", h.CreateBlock)
		api.DELETE("/owners/:id/blocks/:blockId", h.DeleteBlock)

		// Rentals
		api.GET("/variants/:id/availability", h.CheckVariantAvailability)
		api.GET("/owners/:id/variants", h.ListOwnerVariants)
		api.PATCH("/rentals/:id", h.UpdateRental)
		api.GET("/rentals/:id", h.GetRental)
		api.GET("/owners/:id/rentals", h.ListOwnerRentals)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
