package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/service"
)

// TransactionHandler serves the transaction collection of one book.
type TransactionHandler struct {
	transactions *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type highlightRequest struct {
	Color models.Highlight `json:"color"`
}

func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.transactions.List(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var draft models.TransactionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload"})
		return
	}
	txn, err := h.transactions.Create(c.Request.Context(), c.Param("bookId"), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var draft models.TransactionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload"})
		return
	}
	txn, err := h.transactions.Update(c.Request.Context(), c.Param("bookId"), c.Param("id"), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactions.Delete(c.Request.Context(), c.Param("bookId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetHighlight sets or clears the visual marker. An empty color clears.
func (h *TransactionHandler) SetHighlight(c *gin.Context) {
	var req highlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid highlight payload"})
		return
	}
	if req.Color != "" && !req.Color.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown highlight color"})
		return
	}
	if err := h.transactions.SetHighlight(c.Request.Context(), c.Param("bookId"), c.Param("id"), req.Color); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
