package routes

import (
	"github.com/gin-gonic/gin"

	"quoterelay/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	quoteHandler *handlers.QuoteHandler,
	legacyAmountGet bool,
) *gin.Engine {

	r.GET("/healthz", handlers.Healthz)

	r.GET("/hubspot-deal-get", quoteHandler.GetDealQuotes)
	r.PATCH("/hubspot-deal-amount", quoteHandler.UpdateDealAmount)

	// older front-ends still send the update as a GET with query params
	if legacyAmountGet {
		r.GET("/hubspot-deal-amount", quoteHandler.UpdateDealAmountLegacy)
	}

	return r
}
