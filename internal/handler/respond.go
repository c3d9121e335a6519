// Package handler exposes the ledger services over HTTP with gin. Each
// resource gets its own handler struct; all of them share the error
// mapping in this file.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/munimapp/munim/internal/ledger"
	"github.com/munimapp/munim/internal/service"
	"github.com/munimapp/munim/internal/storage"
)

// respondError translates domain errors into HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrDefaultBook):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, storage.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": "name already exists"})
	case errors.Is(err, storage.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
