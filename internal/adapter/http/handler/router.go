package handler

import (
	"telco-billing/config"
	"telco-billing/internal/adapter/http/middleware"
	"telco-billing/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TfnSvc         ports.TfnService
	Ledger         ports.WalletLedger
	Gateway        ports.DIDGateway
	VendorSvc      ports.VendorService
	CDRSvc         ports.CDRService
	AuditSvc       ports.AuditService // nil = audit logging disabled
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Pagination     config.PaginationConfig
	OpenAPISpec    []byte // nil = /docs disabled
	Mode           string // gin mode: debug, release, test
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Actor())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	RegisterDocs(r, deps.OpenAPISpec)

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// Deep health check (PostgreSQL + Redis)
	v1.GET("/health", HealthCheck(deps.HealthCheckers...))

	tfnHandler := NewTFNHandler(deps.TfnSvc)
	tfn := v1.Group("/tfn")
	{
		tfn.POST("/search", rl("tfn_search"), tfnHandler.Search)
		tfn.POST("/purchase", rl("tfn_purchase"), tfnHandler.Purchase)
	}

	walletHandler := NewWalletHandler(deps.Ledger, deps.Pagination)
	wallets := v1.Group("/wallets/:accountId", rl("reads"))
	{
		wallets.GET("/balance", walletHandler.GetBalance)
		wallets.GET("/transactions", walletHandler.ListTransactions)
	}

	didHandler := NewDIDHandler(deps.Gateway, deps.Pagination)
	v1.GET("/dids", rl("reads"), didHandler.List)

	vendorHandler := NewVendorHandler(deps.VendorSvc, deps.Pagination)
	vendors := v1.Group("/vendors")
	{
		vendors.POST("", rl("writes"), vendorHandler.Create)
		vendors.GET("", rl("reads"), vendorHandler.List)
		vendors.GET("/:id", rl("reads"), vendorHandler.Get)
		vendors.PATCH("/:id/status", rl("writes"), vendorHandler.UpdateStatus)
	}

	cdrHandler := NewCDRHandler(deps.CDRSvc, deps.Pagination)
	cdrs := v1.Group("/cdrs")
	{
		cdrs.POST("", rl("cdr_ingest"), cdrHandler.Record)
		cdrs.GET("", rl("reads"), cdrHandler.List)
		cdrs.GET("/:id", rl("reads"), cdrHandler.Get)
	}

	return r
}
