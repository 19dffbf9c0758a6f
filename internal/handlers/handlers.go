package handlers

import (
	"net/http"

	_ "github.com/greencycle/ecopoints/docs"
	authhandlers "github.com/greencycle/ecopoints/internal/handlers/auth"
	investhandlers "github.com/greencycle/ecopoints/internal/handlers/invest"
	redeemhandlers "github.com/greencycle/ecopoints/internal/handlers/redeem"
	wallethandlers "github.com/greencycle/ecopoints/internal/handlers/wallet"
	"github.com/greencycle/ecopoints/internal/service"
	"github.com/greencycle/ecopoints/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Exchange(w http.ResponseWriter, r *http.Request)
	GetExchanges(w http.ResponseWriter, r *http.Request)
}

type InvestHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
	GetSubscriptions(w http.ResponseWriter, r *http.Request)
	ApplyReturns(w http.ResponseWriter, r *http.Request)
	GetInstruments(w http.ResponseWriter, r *http.Request)
}

type RedeemHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	GetRedemptions(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	InvestHandler InvestHandler
	RedeemHandler RedeemHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService),
		InvestHandler: investhandlers.New(s.InvestService),
		RedeemHandler: redeemhandlers.New(s.RedeemService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/instruments", h.InvestHandler.GetInstruments)
	r.Get("/api/rewards", h.RedeemHandler.GetRewards)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/transfer", h.WalletHandler.Transfer)
				r.Post("/exchange", h.WalletHandler.Exchange)
				r.Get("/exchanges", h.WalletHandler.GetExchanges)
			})
			r.Route("/investments", func(r chi.Router) {
				r.Post("/", h.InvestHandler.Subscribe)
				r.Get("/", h.InvestHandler.GetSubscriptions)
				r.Post("/returns", h.InvestHandler.ApplyReturns)
			})
			r.Route("/redemptions", func(r chi.Router) {
				r.Post("/", h.RedeemHandler.Redeem)
				r.Get("/", h.RedeemHandler.GetRedemptions)
			})
		})
	})

	return r
}
