package routes

import (
	"net/http"
	"winnet_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients       = "/clients"
	PathQuotes        = "/quotes"
	PathSales         = "/sales"
	PathLedger        = "/ledger"
	PathPipeline      = "/pipeline"
	PathNotifications = "/notifications"
	PathAdmin         = "/admin"
)

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.POST("/totals", h.PreviewTotals)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id/send", h.SendQuote)
		// Approval fans out into sale + ledger entry.
		quotes.PATCH("/:id/approve", h.ApproveQuote)
		quotes.PATCH("/:id/reject", h.RejectQuote)
		quotes.PATCH("/:id/stage", h.MoveStage)
		quotes.POST("/:id/follow-ups", h.AddFollowUp)
		quotes.POST("/:id/sale", h.CreateSale)
	}
}

func addSaleRoutes(rg *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.PATCH("/:id/confirm", h.ConfirmSale)
		sales.PATCH("/:id/cancel", h.CancelSale)
		sales.GET("/:id/payments", h.ListPayments)
		sales.POST("/:id/payments", h.ConfirmPayment)
		sales.POST("/:id/installments", h.ScheduleInstallments)
	}
}

func addLedgerRoutes(rg *gin.RouterGroup, h *handlers.LedgerHandler) {
	ledger := rg.Group(PathLedger)
	{
		ledger.POST("/outflows", h.RecordOutflow)
		ledger.GET("/cash-flow", h.CashFlow)
		ledger.GET("/kpis", h.KPIs)
		ledger.GET("/pending", h.PendingFinancials)
		ledger.GET("/projections", h.Projections)
		ledger.GET("/alerts", h.Alerts)
		ledger.GET("/reports/:month", h.MonthlyReport)
	}
}

func addPipelineRoutes(rg *gin.RouterGroup, h *handlers.PipelineHandler) {
	pipeline := rg.Group(PathPipeline)
	{
		pipeline.GET("/board", h.Board)
		pipeline.GET("/metrics", h.Metrics)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListNotifications)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/reconcile", h.Reconcile)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
