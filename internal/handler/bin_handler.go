package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/service"
)

// BinHandler serves the recycle bin of one book.
type BinHandler struct {
	bin *service.BinService
}

// NewBinHandler creates a new BinHandler.
func NewBinHandler(bin *service.BinService) *BinHandler {
	return &BinHandler{bin: bin}
}

func (h *BinHandler) List(c *gin.Context) {
	items, err := h.bin.List(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *BinHandler) Restore(c *gin.Context) {
	item, err := h.bin.Restore(c.Request.Context(), c.Param("bookId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
