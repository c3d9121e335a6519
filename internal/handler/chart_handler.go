package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/models"
	"github.com/munimapp/munim/internal/service"
)

// ChartHandler serves categories, accounts and the chart-of-accounts
// view for one book.
type ChartHandler struct {
	chart *service.ChartService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chart *service.ChartService) *ChartHandler {
	return &ChartHandler{chart: chart}
}

type categoryRequest struct {
	Name       string            `json:"name" binding:"required"`
	NormalSide models.NormalSide `json:"normalSide"`
}

type accountRequest struct {
	CategoryID     string             `json:"categoryId" binding:"required"`
	Name           string             `json:"name" binding:"required"`
	Type           models.AccountType `json:"type"`
	OpeningBalance float64            `json:"openingBalance"`
}

type batchDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (h *ChartHandler) ListCategories(c *gin.Context) {
	categories, err := h.chart.Categories(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ChartHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.NormalSide != "" && req.NormalSide != models.DebitNormal && req.NormalSide != models.CreditNormal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "normalSide must be debit or credit"})
		return
	}
	category, err := h.chart.CreateCategory(c.Request.Context(), c.Param("bookId"), req.Name, req.NormalSide)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ChartHandler) DeleteCategory(c *gin.Context) {
	if err := h.chart.DeleteCategory(c.Request.Context(), c.Param("bookId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChartHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.chart.Accounts(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *ChartHandler) CreateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId and name are required"})
		return
	}
	if req.Type != "" && !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown account type"})
		return
	}
	account := &models.Account{
		BookID:         c.Param("bookId"),
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Type:           req.Type,
		OpeningBalance: req.OpeningBalance,
	}
	created, err := h.chart.CreateAccount(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ChartHandler) UpdateAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId and name are required"})
		return
	}
	if req.Type != "" && !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown account type"})
		return
	}
	account := &models.Account{
		ID:             c.Param("id"),
		BookID:         c.Param("bookId"),
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Type:           req.Type,
		OpeningBalance: req.OpeningBalance,
	}
	updated, err := h.chart.UpdateAccount(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ChartHandler) DeleteAccount(c *gin.Context) {
	if err := h.chart.DeleteAccount(c.Request.Context(), c.Param("bookId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChartHandler) DeleteAccounts(c *gin.Context) {
	var req batchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids are required"})
		return
	}
	if err := h.chart.DeleteAccounts(c.Request.Context(), c.Param("bookId"), req.IDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
