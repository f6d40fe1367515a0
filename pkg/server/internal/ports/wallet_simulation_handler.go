package ports

import (
	"net/url"

	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// WalletSimulationHandler serves GET /api/v1/wallets/:label/simulation.
type WalletSimulationHandler struct {
	service *app.WalletSimulationService
}

// Handle replays the wallet named in the path and returns its tally.
func (h *WalletSimulationHandler) Handle(c *fiber.Ctx) error {
	label, err := url.PathUnescape(c.Params("label"))
	if err != nil {
		return app.NewIncorrectInputWithFieldError("label")
	}

	dto, err := h.service.SimulateWallet(c.UserContext(), label)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(NewWalletSimulationSuccessResponse(dto))
}

// NewWalletSimulationHandler constructs a WalletSimulationHandler around the given provider.
// Panics if the provider is nil.
func NewWalletSimulationHandler(provider app.WalletSimulationProvider) *WalletSimulationHandler {
	if provider == nil {
		panic("wallet simulation provider cannot be nil")
	}
	return &WalletSimulationHandler{service: app.NewWalletSimulationService(provider)}
}
