package v0

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"PaymentService/internal/api/apperror"
	"PaymentService/internal/payout/domain/transfer"

	"github.com/gin-gonic/gin"
)

const (
	codeTransferNotFound            = "transfer_not_found"
	codeStripeTransferNotFound      = "stripe_transfer_not_found"
	codeTransferAlreadyExists       = "transfer_already_exists"
	codeStripeTransferAlreadyExists = "stripe_transfer_already_exists"

	messageTransferNotFound            = "transfer not found"
	messageStripeTransferNotFound      = "stripe transfer not found"
	messageTransferAlreadyExists       = "transfer already exists"
	messageStripeTransferAlreadyExists = "stripe transfer already exists"
)

type TransferHandler struct {
	repo transfer.TransferRepo
}

func NewTransferHandler(repo transfer.TransferRepo) TransferHandler {
	return TransferHandler{repo: repo}
}

func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req TransferCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	created, err := h.repo.CreateTransfer(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, transfer.ErrAlreadyExists) {
			apperror.Conflict(c, codeTransferAlreadyExists, messageTransferAlreadyExists)
			return
		}
		apperror.Internal(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "Transfer created", "transfer_id", created.ID)
	c.JSON(http.StatusCreated, toTransfer(*created))
}

func (h *TransferHandler) GetTransfer(c *gin.Context) {
	id, ok := pathID(c, "transfer_id")
	if !ok {
		return
	}

	t, err := h.repo.GetTransferByID(c.Request.Context(), id)
	if err != nil {
		apperror.Internal(c, err)
		return
	}
	if t == nil {
		apperror.NotFound(c, codeTransferNotFound, messageTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, toTransfer(*t))
}

func (h *TransferHandler) UpdateTransfer(c *gin.Context) {
	id, ok := pathID(c, "transfer_id")
	if !ok {
		return
	}

	var req TransferUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	updated, err := h.repo.UpdateTransferByID(c.Request.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, transfer.ErrAlreadyExists) {
			apperror.Conflict(c, codeTransferAlreadyExists, messageTransferAlreadyExists)
			return
		}
		apperror.Internal(c, err)
		return
	}
	if updated == nil {
		apperror.NotFound(c, codeTransferNotFound, messageTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, toTransfer(*updated))
}

func (h *TransferHandler) CreateStripeTransfer(c *gin.Context) {
	var req StripeTransferCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	created, err := h.repo.CreateStripeTransfer(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, transfer.ErrAlreadyExists) {
			apperror.Conflict(c, codeStripeTransferAlreadyExists, messageStripeTransferAlreadyExists)
			return
		}
		apperror.Internal(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "Stripe transfer created",
		"stripe_transfer_id", created.ID, "transfer_id", created.TransferID)
	c.JSON(http.StatusCreated, toStripeTransfer(*created))
}

// GetStripeTransferByStripeID answers 200 with null when nothing matches,
// unlike the other single-record lookups.
func (h *TransferHandler) GetStripeTransferByStripeID(c *gin.Context) {
	var query StripeIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	st, err := h.repo.GetStripeTransferByStripeID(c.Request.Context(), query.StripeID)
	if err != nil {
		apperror.Internal(c, err)
		return
	}

	var res *StripeTransfer
	if st != nil {
		wire := toStripeTransfer(*st)
		res = &wire
	}
	c.JSON(http.StatusOK, res)
}

func (h *TransferHandler) GetStripeTransfersByTransferID(c *gin.Context) {
	var query TransferIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	sts, err := h.repo.GetStripeTransfersByTransferID(c.Request.Context(), query.TransferID)
	if err != nil {
		apperror.Internal(c, err)
		return
	}

	res := make([]StripeTransfer, 0, len(sts))
	for _, st := range sts {
		res = append(res, toStripeTransfer(st))
	}
	c.JSON(http.StatusOK, res)
}

func (h *TransferHandler) GetStripeTransfer(c *gin.Context) {
	id, ok := pathID(c, "stripe_transfer_id")
	if !ok {
		return
	}

	st, err := h.repo.GetStripeTransferByID(c.Request.Context(), id)
	if err != nil {
		apperror.Internal(c, err)
		return
	}
	if st == nil {
		apperror.NotFound(c, codeStripeTransferNotFound, messageStripeTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, toStripeTransfer(*st))
}

func (h *TransferHandler) UpdateStripeTransfer(c *gin.Context) {
	id, ok := pathID(c, "stripe_transfer_id")
	if !ok {
		return
	}

	var req StripeTransferUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	updated, err := h.repo.UpdateStripeTransferByID(c.Request.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, transfer.ErrAlreadyExists) {
			apperror.Conflict(c, codeStripeTransferAlreadyExists, messageStripeTransferAlreadyExists)
			return
		}
		apperror.Internal(c, err)
		return
	}
	if updated == nil {
		apperror.NotFound(c, codeStripeTransferNotFound, messageStripeTransferNotFound)
		return
	}

	c.JSON(http.StatusOK, toStripeTransfer(*updated))
}

// DeleteStripeTransferByStripeID acknowledges even when nothing was deleted.
func (h *TransferHandler) DeleteStripeTransferByStripeID(c *gin.Context) {
	var query StripeIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperror.InvalidRequest(c, err)
		return
	}

	deleted, err := h.repo.DeleteStripeTransferByStripeID(c.Request.Context(), query.StripeID)
	if err != nil {
		apperror.Internal(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "Stripe transfer delete requested",
		"stripe_id", query.StripeID, "deleted", deleted)
	c.JSON(http.StatusOK, Acknowledgement{Acknowledged: true})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apperror.InvalidRequest(c, fmt.Errorf("%s must be an integer", name))
		return 0, false
	}
	return id, true
}
