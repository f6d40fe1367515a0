package ports

import (
	"slices"

	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// HandlerRegistryService is the central registry mapping API endpoints to their handlers.
type HandlerRegistryService struct {
	forms   *FormHandler
	wallets *WalletSimulationHandler
}

// RegisterRoutes mounts every endpoint under /api/v1. The wallet simulation route reaches out to the
// wallet data sources and is guarded by the walletGuard handlers.
func (h *HandlerRegistryService) RegisterRoutes(router fiber.Router, walletGuard ...fiber.Handler) {
	v1 := router.Group("/api/v1")
	v1.Post("/forms/standard", h.forms.HandleStandard)
	v1.Post("/forms/alternate", h.forms.HandleAlternate)

	handlers := append(slices.Clone(walletGuard), h.wallets.Handle)
	v1.Get("/wallets/:label/simulation", handlers...)
}

// NewHandlerRegistryService creates a HandlerRegistryService with every handler initialized.
func NewHandlerRegistryService(matcher app.FormMatcher, simulator app.WalletSimulationProvider) *HandlerRegistryService {
	return &HandlerRegistryService{
		forms:   NewFormHandler(matcher),
		wallets: NewWalletSimulationHandler(simulator),
	}
}
