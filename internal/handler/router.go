package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/munimapp/munim/internal/middleware"
	"github.com/munimapp/munim/internal/service"
)

// Services bundles the service layer for router wiring.
type Services struct {
	Books        *service.BookService
	Chart        *service.ChartService
	Transactions *service.TransactionService
	Ledgers      *service.LedgerService
	Bin          *service.BinService
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(svc Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Metrics(), middleware.CORS(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	books := NewBookHandler(svc.Books)
	chart := NewChartHandler(svc.Chart)
	transactions := NewTransactionHandler(svc.Transactions)
	ledgers := NewLedgerHandler(svc.Ledgers)
	bin := NewBinHandler(svc.Bin)

	api := r.Group("/api/v1")

	api.GET("/books", books.List)
	api.POST("/books", books.Create)
	api.PUT("/books/:bookId", books.Rename)
	api.DELETE("/books/:bookId", books.Delete)

	book := api.Group("/books/:bookId")

	book.GET("/categories", chart.ListCategories)
	book.POST("/categories", chart.CreateCategory)
	book.DELETE("/categories/:id", chart.DeleteCategory)

	book.GET("/accounts", chart.ListAccounts)
	book.POST("/accounts", chart.CreateAccount)
	book.PUT("/accounts/:id", chart.UpdateAccount)
	book.DELETE("/accounts/:id", chart.DeleteAccount)
	book.POST("/accounts/batch-delete", chart.DeleteAccounts)
	book.GET("/accounts/:id/ledger", ledgers.AccountLedger)

	book.GET("/chart", chart.ListCategories)
	book.GET("/summary", ledgers.Summary)

	book.GET("/transactions", transactions.List)
	book.POST("/transactions", transactions.Create)
	book.PUT("/transactions/:id", transactions.Update)
	book.DELETE("/transactions/:id", transactions.Delete)
	book.PUT("/transactions/:id/highlight", transactions.SetHighlight)

	book.GET("/bin", bin.List)
	book.POST("/bin/:id/restore", bin.Restore)

	return r
}
