package handlers

import (
	"net/http"

	"github.com/a2sh3r/holdengine/internal/metrics"
	"github.com/a2sh3r/holdengine/internal/middleware"
	"github.com/a2sh3r/holdengine/internal/service"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	authService   service.AuthService
	ledgerService service.LedgerService
	ticketService service.TicketService
	holdService   service.HoldService
	feeService    service.FeeService
}

func NewHandler(authService service.AuthService, ledgerService service.LedgerService, ticketService service.TicketService,
	holdService service.HoldService, feeService service.FeeService) *Handler {
	return &Handler{
		authService:   authService,
		ledgerService: ledgerService,
		ticketService: ticketService,
		holdService:   holdService,
		feeService:    feeService,
	}
}

func NewRouter(handler *Handler, secretKey string, limiter *middleware.UserLimiter, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(m.Middleware)
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.NewHashMiddleware(secretKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimitMiddleware(limiter)).Post("/auth/token", handler.IssueToken)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Route("/deposits", func(r chi.Router) {
				r.Get("/", handler.ListDeposits)
				r.Post("/", handler.RegisterDeposit)
				r.Get("/withdrawable", handler.Withdrawable)
				r.Get("/{currency}/available", handler.GetAvailable)
				r.Post("/{currency}/sync", handler.SyncDeposit)
			})

			r.Route("/holds", func(r chi.Router) {
				r.Get("/", handler.ListActiveHolds)
				r.Get("/{id}", handler.GetHold)
				r.With(middleware.RequireAdmin).Post("/{id}/refund", handler.RefundHold)
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", handler.ListTickets)
				r.Post("/", handler.CreateTicket)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", handler.GetTicket)
					r.Get("/holds", handler.GetTicketHolds)
					r.Post("/tos", handler.AcceptTOS)
					r.Post("/claim", handler.ClaimTicket)
					r.Post("/client-sent", handler.MarkClientSent)
					r.Post("/confirm-receipt", handler.ConfirmReceipt)
					r.Post("/complete", handler.CompleteTicket)
					r.Post("/cancel", handler.CancelTicket)
					r.Post("/close", handler.CloseTicket)
					r.Post("/amount-change", handler.RequestAmountChange)
					r.Post("/amount-change/approve", handler.ApproveAmountChange)
					r.Post("/fee-change", handler.RequestFeeChange)
					r.Post("/fee-change/approve", handler.ApproveFeeChange)
					r.Post("/unclaim", handler.RequestUnclaim)
					r.Post("/unclaim/approve", handler.ApproveUnclaim)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/fees/collect", handler.CollectServerFee)
				r.Post("/fees/collect-all", handler.CollectPendingFees)
				r.Get("/fees/pending", handler.PendingFees)
				r.Get("/fees/summary", handler.FeeSummary)

				r.Post("/tickets/{id}/force-claim", handler.ForceClaim)
				r.Post("/tickets/{id}/amount", handler.AdminChangeAmount)
				r.Post("/tickets/{id}/fee", handler.AdminChangeFee)
				r.Post("/tickets/{id}/cancel", handler.AdminCancelTicket)

				r.Post("/deposits/{userID}/{currency}/active", handler.SetDepositActive)
				r.Post("/deposits/{userID}/{currency}/adjust", handler.AdjustDeposit)
			})
		})
	})

	return r
}
