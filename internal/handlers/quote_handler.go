package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quoterelay/internal/models"
	"quoterelay/internal/services"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

func NewQuoteHandler(service *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: service}
}

// GetDealQuotes godoc
// @Summary     Quote candidates for a job number
// @Description Searches deals with job_number in [n, n+1) and flattens each with its primary contact, company and sales rep.
// @Tags        quotes
// @Produce     json
// @Param       jobNumber query string true "Job number"
// @Success     200 {array}  models.QuoteCandidate
// @Failure     404 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /hubspot-deal-get [get]
func (h *QuoteHandler) GetDealQuotes(c *gin.Context) {
	jobNumber := services.ParseJobNumber(c.GetQuery("jobNumber"))

	quotes, err := h.Service.BuildQuoteCandidates(c.Request.Context(), jobNumber)
	if err != nil {
		respondServiceError(c, "quote:get", err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// UpdateDealAmount godoc
// @Summary     Set a deal amount
// @Description Rounds the amount half-up to cents and writes it to the deal.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Param       body body models.DealAmountUpdateRequest true "Deal id and amount"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /hubspot-deal-amount [patch]
func (h *QuoteHandler) UpdateDealAmount(c *gin.Context) {
	var req models.DealAmountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.updateAmount(c, req.DealObjNum.String(), req.Amount.String())
}

// UpdateDealAmountLegacy godoc
// @Summary     Set a deal amount (query form)
// @Description Same as PATCH /hubspot-deal-amount, for callers that still send query parameters.
// @Tags        quotes
// @Produce     json
// @Param       dealObjNum query string true "Deal record id"
// @Param       amount     query string true "New amount"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /hubspot-deal-amount [get]
func (h *QuoteHandler) UpdateDealAmountLegacy(c *gin.Context) {
	h.updateAmount(c, c.Query("dealObjNum"), c.Query("amount"))
}

func (h *QuoteHandler) updateAmount(c *gin.Context, dealID, rawAmount string) {
	amount, err := services.ParseAmount(rawAmount)
	if err != nil {
		respondServiceError(c, "quote:amount", err)
		return
	}

	data, err := h.Service.UpdateDealAmount(c.Request.Context(), dealID, amount)
	if err != nil {
		respondServiceError(c, "quote:amount", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
