package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "winnet_crm/docs"
	"winnet_crm/internal/adapter/http/handlers"
	"winnet_crm/internal/adapter/http/routes"
	"winnet_crm/internal/adapter/persistence/repository"
	"winnet_crm/internal/config"
	"winnet_crm/internal/infrastructure/database"
	"winnet_crm/internal/infrastructure/events"
	"winnet_crm/internal/infrastructure/payments"
	"winnet_crm/internal/usecase"
	"winnet_crm/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Winnet CRM API
// @version         1.0
// @description     Quotes, the approval cascade into sales and ledger entries, the sales pipeline and cash-flow projections.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB(cfg)

	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	saleRepo := repository.NewSaleDynamoRepository(ddb, cfg.Tables.Sales)
	entryRepo := repository.NewFinancialEntryDynamoRepository(ddb, cfg.Tables.FinancialEntries)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.Tables.Notifications)
	store := repository.NewCascadeDynamoStore(ddb, repository.CascadeTables{
		Quotes:           cfg.Tables.Quotes,
		Sales:            cfg.Tables.Sales,
		FinancialEntries: cfg.Tables.FinancialEntries,
		Payments:         cfg.Tables.Payments,
	})

	bus := events.NewBus(cfg.EventQueueSize, subscribers(cfg, notificationRepo)...)
	bus.Start(context.Background())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	cascadeUseCase := usecase.NewCascadeUseCase(quoteRepo, clientRepo, saleRepo, entryRepo, store, bus)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, clientRepo, cascadeUseCase, bus)
	clientUseCase := usecase.NewClientUseCase(clientRepo, quoteRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, saleRepo, entryRepo, store, paymentGateway, bus, usecase.PaymentOptions{
		MockMode:        cfg.PaymentGatewayMock,
		Sandbox:         cfg.SandboxPayments(),
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})
	ledgerUseCase := usecase.NewLedgerUseCase(entryRepo, saleRepo, paymentRepo, quoteRepo, clientRepo)
	pipelineUseCase := usecase.NewPipelineUseCase(quoteRepo, clientRepo, saleRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	router := routes.NewRouter(routes.Handlers{
		Clients:       handlers.NewClientHandler(clientUseCase),
		Quotes:        handlers.NewQuoteHandler(quoteUseCase, cascadeUseCase),
		Sales:         handlers.NewSaleHandler(cascadeUseCase, paymentUseCase),
		Ledger:        handlers.NewLedgerHandler(ledgerUseCase, cascadeUseCase),
		Pipeline:      handlers.NewPipelineHandler(pipelineUseCase),
		Notifications: handlers.NewNotificationHandler(notificationUseCase),
		Admin:         handlers.NewAdminHandler(cascadeUseCase),
	})
	srv := routes.NewServer(cfg.Addr(), cfg.CORSAllowedOrigins, router)

	go func() {
		log.Printf("[api] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown failed err=%v", err)
	}
	bus.Close()
}

// subscribers always writes in-app notifications; Redis fan-out and the audit
// trail are enabled only when configured.
func subscribers(cfg *config.Config, notificationRepo interfaces.INotificationRepository) []events.Subscriber {
	subs := []events.Subscriber{events.NewNotificationWriter(notificationRepo)}

	if cfg.RedisURL != "" {
		client, err := events.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("[events] redis disabled err=%v", err)
		} else {
			subs = append(subs, events.NewRedisPublisher(client))
		}
	}

	if cfg.AuditDatabaseURL != "" {
		db, err := events.ConnectAuditDB(cfg.AuditDatabaseURL)
		if err != nil {
			log.Printf("[events] audit trail disabled err=%v", err)
		} else {
			subs = append(subs, events.NewAuditLogger(db))
		}
	}
	return subs
}
