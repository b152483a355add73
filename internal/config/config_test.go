package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("QUOTES_TABLE", "")
	t.Setenv("EVENT_QUEUE_SIZE", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.Tables.Quotes != "quotes" || cfg.Tables.FinancialEntries != "financial_entries" {
		t.Fatalf("unexpected tables: %+v", cfg.Tables)
	}
	if cfg.EventQueueSize != 100 {
		t.Fatalf("expected default queue size, got %d", cfg.EventQueueSize)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("mock mode should be off by default")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("QUOTES_TABLE", "crm_quotes")
	t.Setenv("EVENT_QUEUE_SIZE", "not-a-number")
	t.Setenv("MERCADOPAGO_MOCK", " Yes ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://crm.winnet.app,")

	cfg := Load()
	if cfg.Addr() != ":9090" || cfg.Tables.Quotes != "crm_quotes" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.EventQueueSize != 100 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.EventQueueSize)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://crm.winnet.app" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
