package handlers

import (
	"kevina/internal/bus"
	"kevina/internal/cart"
	"kevina/internal/config"
	"kevina/internal/feed"
	"kevina/internal/services"
	"kevina/internal/store"
)

type Deps struct {
	ShopHandler  *ShopHandler
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	AuthHandler  *AuthHandler
	AdminHandler *AdminHandler

	Auth    *services.AuthService
	Catalog *services.CatalogService
}

func NewDeps(s *store.Store, cfg config.Config, f *feed.Feed, b *bus.Bus) *Deps {
	cartMgr := cart.NewManager(s, b)
	catalogSvc := services.NewCatalogService(s, f, b)
	authSvc := services.NewAuthService(s)
	orderSvc := services.NewOrderService(s, cartMgr)

	return &Deps{
		ShopHandler:  &ShopHandler{Catalog: catalogSvc, Store: s, Cart: cartMgr},
		CartHandler:  &CartHandler{Cart: cartMgr, Catalog: catalogSvc, Store: s},
		OrderHandler: &OrderHandler{Cart: cartMgr, Order: orderSvc, Store: s, WhatsAppNumber: cfg.WhatsAppNumber},
		AuthHandler:  &AuthHandler{Auth: authSvc},
		AdminHandler: &AdminHandler{
			Catalog:        catalogSvc,
			Order:          orderSvc,
			Auth:           authSvc,
			Store:          s,
			Bus:            b,
			WhatsAppNumber: cfg.WhatsAppNumber,
		},
		Auth:    authSvc,
		Catalog: catalogSvc,
	}
}
