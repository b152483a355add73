package routes

import (
	"log"
	"net/http"
	"time"
	_ "winnet_crm/docs"
	"winnet_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers is everything the router mounts under /v1.
type Handlers struct {
	Clients       *handlers.ClientHandler
	Quotes        *handlers.QuoteHandler
	Sales         *handlers.SaleHandler
	Ledger        *handlers.LedgerHandler
	Pipeline      *handlers.PipelineHandler
	Notifications *handlers.NotificationHandler
	Admin         *handlers.AdminHandler
}

// NewRouter builds the gin engine with middlewares, Swagger and the v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, h.Clients)
	addQuoteRoutes(v1, h.Quotes)
	addSaleRoutes(v1, h.Sales)
	addLedgerRoutes(v1, h.Ledger)
	addPipelineRoutes(v1, h.Pipeline)
	addNotificationRoutes(v1, h.Notifications)
	addAdminRoutes(v1, h.Admin)
	return router
}

// NewServer wraps the router with CORS for the browser front-end.
func NewServer(addr string, allowedOrigins []string, router http.Handler) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", handlers.HeaderUserID},
		MaxAge:         300,
	})
	return &http.Server{
		Addr:              addr,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
