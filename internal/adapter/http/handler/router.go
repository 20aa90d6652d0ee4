package handler

import (
	"net/http"

	"split-wallet-engine/internal/adapter/http/middleware"
	"split-wallet-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Creation       ports.CreationService
	Query          ports.QueryService
	Management     ports.ManagementService
	Payments       ports.PaymentProcessor
	Roulette       ports.RouletteService
	Cleanup        ports.CleanupService
	DrawExecutor   ports.RouletteExecutor // serves /internal/v1/roulette/draw
	TokenSvc       ports.TokenService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	ServiceSecret  string
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService      // nil = denied-access audit disabled
	Metrics        middleware.HTTPObserver // nil = request metrics disabled
	MetricsHandler http.Handler            // nil = /metrics not served
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

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

	// --- JWT-authenticated split wallet API ---
	h := NewSplitHandler(deps.Creation, deps.Query, deps.Management, deps.Payments, deps.Roulette, deps.Cleanup)
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	splits := r.Group("/api/v1/splits", jwtAuth)
	{
		splits.POST("", rl("splits_write"), h.Create)
		splits.POST("/degen", rl("splits_write"), h.CreateDegen)
		splits.GET("", rl("splits_read"), h.List)
		splits.GET("/bill/:billId", rl("splits_read"), h.GetByBill)
		splits.GET("/:id", rl("splits_read"), h.Get)
		splits.GET("/:id/summary", rl("splits_read"), h.Summary)
		splits.PATCH("/:id", rl("splits_write"), h.Update)
		splits.PUT("/:id/participants", rl("splits_write"), h.ReplaceParticipants)
		splits.POST("/:id/lock", rl("splits_write"), h.Lock)

		splits.POST("/:id/payments", rl("payments"), h.Pay)
		splits.GET("/:id/balance", rl("splits_read"), h.Balance)
		splits.POST("/:id/reconcile", rl("payments"), h.Reconcile)

		splits.POST("/:id/extract", rl("payouts"), h.Extract)
		splits.POST("/:id/roulette", rl("roulette"), h.Roulette)
		splits.GET("/:id/roulette", rl("splits_read"), h.RouletteResult)
		splits.POST("/:id/degen/winner-payout", rl("payouts"), h.WinnerPayout)
		splits.POST("/:id/degen/loser-payment", rl("payouts"), h.LoserPayment)

		splits.POST("/:id/cancel", rl("splits_write"), h.Cancel)
		splits.POST("/:id/complete", rl("splits_write"), h.Complete)
		splits.POST("/:id/burn", rl("payouts"), h.Burn)

		splits.POST("/:id/repair/data", rl("repair"), h.RepairData)
		splits.POST("/:id/repair/sync", rl("repair"), h.RepairSync)
	}

	// --- HMAC-authenticated internal API ---
	if deps.DrawExecutor != nil {
		ih := NewInternalHandler(deps.DrawExecutor, deps.Query)
		serviceAuth := middleware.ServiceAuth(deps.ServiceSecret, deps.SigSvc, deps.NonceStore, deps.Logger)
		internal := r.Group("/internal/v1", serviceAuth, rl("internal"))
		{
			internal.POST("/roulette/draw", ih.Draw)
			internal.GET("/splits", ih.ListByStatus)
		}
	}

	return r
}
