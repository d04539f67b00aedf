package v0

import (
	"errors"
	"net/http"

	"PaymentService/internal/api/apperror"
	"PaymentService/internal/payin/domain/dispute"

	"github.com/gin-gonic/gin"
)

const codeDisputeNotFound = "dispute_not_found"

type DisputeHandler struct {
	service *dispute.DisputeService
}

func NewDisputeHandler(s *dispute.DisputeService) DisputeHandler {
	return DisputeHandler{service: s}
}

func (h *DisputeHandler) GetDispute(c *gin.Context) {
	var query GetDisputeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}
	idType, err := parseIDType(query.IDType)
	if err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	d, err := h.service.GetDispute(c.Request.Context(), c.Param("dispute_id"), idType)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toStripeDispute(*d))
}

func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	var query ListDisputesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	listQuery := dispute.ListDisputesQuery{StripeCardID: query.StripeCardID}
	if _, ok := c.GetQuery("stripe_card_ids"); ok && query.StripeCardID == nil {
		ids, err := parseInt64CSV("stripe_card_ids", query.StripeCardIDs)
		if err != nil {
			apperror.InvalidRequest(c, err)
			return
		}
		listQuery.StripeCardIDs = ids
	}

	disputes, err := h.service.ListDisputes(c.Request.Context(), listQuery)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toStripeDisputes(disputes))
}

func (h *DisputeHandler) SubmitEvidence(c *gin.Context) {
	d, err := h.service.SubmitEvidence(c.Request.Context(), c.Param("dispute_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toStripeDispute(*d))
}

func (h *DisputeHandler) CumulativeAmount(c *gin.Context) {
	var query CumulativeAmountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}
	cardIDs, err := parseInt64CSV("card_ids", query.CardIDs)
	if err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	amount, err := h.service.CumulativeAmount(c.Request.Context(), dispute.GetCumulativeAmountInput{
		CardIDs:   cardIDs,
		Reasons:   splitCSV(query.Reasons),
		StartTime: *query.StartTime,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CumulativeAmount{Amount: amount})
}

func (h *DisputeHandler) CumulativeCount(c *gin.Context) {
	var query CumulativeCountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	count, err := h.service.CumulativeCount(c.Request.Context(), dispute.GetCumulativeCountInput{
		StripeCardID: query.StripeCardID,
		Reasons:      splitCSV(query.Reasons),
		StartTime:    *query.StartTime,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CumulativeCount{Count: count})
}

func (h *DisputeHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dispute.ErrNotFound):
		apperror.NotFound(c, codeDisputeNotFound, "dispute not found")
	case errors.Is(err, dispute.ErrInvalidQuery):
		apperror.InvalidRequest(c, err)
	default:
		apperror.Internal(c, err)
	}
}
