package middleware_test

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/server"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports/middleware"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/testabilities"
	"github.com/4chain-ag/go-hit-simulator/pkg/simulation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const walletEndpoint = "/api/v1/wallets/W/simulation"

func TestBearerTokenAuthMiddleware_ValidCases(t *testing.T) {
	const bearerToken = "valid_wallet_token"

	tests := map[string]struct {
		serverToken string
		headers     map[string]string
	}{
		"Authorization header with a valid HTTP server token.": {
			serverToken: bearerToken,
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer " + bearerToken,
			},
		},
		"No token configured on the HTTP server.": {
			serverToken: "",
			headers:     map[string]string{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			provider := testabilities.NewWalletSimulationProviderMock(t, testabilities.WalletSimulationProviderMockExpectations{
				SimulateWalletCall: true,
				Result:             simulation.WalletResult{Label: "W", Status: simulation.WalletEvaluated},
			})
			fixture := server.NewServerTestFixture(t,
				server.WithWalletSimulator(provider),
				server.WithWalletBearerToken(tc.serverToken),
			)

			// when:
			res, _ := fixture.Client().
				R().
				SetHeaders(tc.headers).
				Get(walletEndpoint)

			// then:
			require.Equal(t, fiber.StatusOK, res.StatusCode())
			provider.AssertCalled()
		})
	}
}

func TestBearerTokenAuthMiddleware_InvalidCases(t *testing.T) {
	const bearerToken = "valid_wallet_token"

	tests := map[string]struct {
		headers            map[string]string
		expectedStatusCode int
		expectedResponse   ports.Error
	}{
		"Missing Authorization header in the HTTP request.": {
			headers:            map[string]string{},
			expectedStatusCode: fiber.StatusUnauthorized,
			expectedResponse:   testabilities.NewTestErrorResponse(t, middleware.NewMissingAuthorizationHeaderError()),
		},
		"Authorization header without the Bearer scheme.": {
			headers:            map[string]string{fiber.HeaderAuthorization: bearerToken},
			expectedStatusCode: fiber.StatusUnauthorized,
			expectedResponse:   testabilities.NewTestErrorResponse(t, middleware.NewMissingBearerTokenValueError()),
		},
		"Authorization header with an invalid token.": {
			headers:            map[string]string{fiber.HeaderAuthorization: "Bearer 1234"},
			expectedStatusCode: fiber.StatusForbidden,
			expectedResponse:   testabilities.NewTestErrorResponse(t, middleware.NewInvalidBearerTokenValueError()),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			provider := testabilities.NewWalletSimulationProviderMock(t, testabilities.WalletSimulationProviderMockExpectations{
				SimulateWalletCall: false,
			})
			fixture := server.NewServerTestFixture(t,
				server.WithWalletSimulator(provider),
				server.WithWalletBearerToken(bearerToken),
			)

			// when:
			var actualResponse ports.Error

			res, _ := fixture.Client().
				R().
				SetHeaders(tc.headers).
				SetError(&actualResponse).
				Get(walletEndpoint)

			// then:
			require.Equal(t, tc.expectedStatusCode, res.StatusCode())
			require.Equal(t, tc.expectedResponse, actualResponse)
			provider.AssertCalled()
		})
	}
}

func TestBearerTokenAuthMiddleware_FormsStayOpen(t *testing.T) {
	// given:
	fixture := server.NewServerTestFixture(t, server.WithWalletBearerToken("valid_wallet_token"))

	// when:
	res, _ := fixture.Client().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(ports.FormRequest{Values: []int64{10, 10, 10, 10, 10}, Spend: 20}).
		Post("/api/v1/forms/alternate")

	// then:
	require.Equal(t, fiber.StatusOK, res.StatusCode())
}
