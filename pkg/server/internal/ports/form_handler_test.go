package ports_test

import (
	"testing"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
	"github.com/4chain-ag/go-hit-simulator/pkg/server"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/ports"
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/testabilities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestFormHandler_ValidCases(t *testing.T) {
	tests := map[string]struct {
		endpoint         string
		payload          ports.FormRequest
		expectedResponse ports.FormResponse
	}{
		"Standard form of five equal values spending two of them.": {
			endpoint: "/api/v1/forms/standard",
			payload:  ports.FormRequest{Values: []int64{10, 10, 10, 10, 10}, Spend: 20},
			expectedResponse: ports.FormResponse{
				Form:    "standard",
				Inputs:  []int64{10, 10, 10, 10, 10},
				Outputs: []int64{20, 20, 3, 3, 4},
			},
		},
		"Standard form found above the requested spend.": {
			endpoint: "/api/v1/forms/standard",
			payload:  ports.FormRequest{Values: []int64{7, 3, 1}, Spend: 5},
			expectedResponse: ports.FormResponse{
				Form:    "standard",
				Inputs:  []int64{7, 3},
				Outputs: []int64{5, 5},
			},
		},
		"Alternate form of five equal values spending two of them.": {
			endpoint: "/api/v1/forms/alternate",
			payload:  ports.FormRequest{Values: []int64{10, 10, 10, 10, 10}, Spend: 20},
			expectedResponse: ports.FormResponse{
				Form:    "alternate",
				Inputs:  []int64{10, 10, 10, 10},
				Outputs: []int64{20, 20},
			},
		},
		"Alternate form with change in both rounds.": {
			endpoint: "/api/v1/forms/alternate",
			payload:  ports.FormRequest{Values: []int64{3, 2}, Spend: 1},
			expectedResponse: ports.FormResponse{
				Form:    "alternate",
				Inputs:  []int64{3, 2},
				Outputs: []int64{1, 2, 1, 1},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			fixture := server.NewServerTestFixture(t)

			// when:
			var actualResponse ports.FormResponse

			res, _ := fixture.Client().
				R().
				SetHeader("Content-Type", "application/json").
				SetBody(tc.payload).
				SetResult(&actualResponse).
				Post(tc.endpoint)

			// then:
			require.Equal(t, fiber.StatusOK, res.StatusCode())
			require.Equal(t, tc.expectedResponse, actualResponse)
		})
	}
}

func TestFormHandler_InvalidCases(t *testing.T) {
	tests := map[string]struct {
		endpoint           string
		payload            any
		expectedStatusCode int
		expectedResponse   ports.Error
	}{
		"Malformed request body content in the HTTP request.": {
			endpoint:           "/api/v1/forms/standard",
			payload:            `{invalid json`,
			expectedStatusCode: fiber.StatusInternalServerError,
			expectedResponse:   testabilities.NewTestErrorResponse(t, ports.NewRequestBodyParserError(testabilities.ErrTestNoopOpFailure)),
		},
		"Missing values in the request body.": {
			endpoint:           "/api/v1/forms/alternate",
			payload:            ports.FormRequest{Spend: 20},
			expectedStatusCode: fiber.StatusBadRequest,
			expectedResponse:   testabilities.NewTestErrorResponse(t, app.NewIncorrectInputWithFieldError("values")),
		},
		"Non-positive spend in the request body.": {
			endpoint:           "/api/v1/forms/standard",
			payload:            ports.FormRequest{Values: []int64{10, 10}, Spend: 0},
			expectedStatusCode: fiber.StatusBadRequest,
			expectedResponse:   testabilities.NewTestErrorResponse(t, app.NewIncorrectInputWithFieldError("spend")),
		},
		"No standard form for the given values.": {
			endpoint:           "/api/v1/forms/standard",
			payload:            ports.FormRequest{Values: []int64{3, 2}, Spend: 1},
			expectedStatusCode: fiber.StatusUnprocessableEntity,
			expectedResponse:   testabilities.NewTestErrorResponse(t, app.NewFormMatcherError(hit.ErrNotEnoughFunds)),
		},
		"No alternate form for the given values.": {
			endpoint:           "/api/v1/forms/alternate",
			payload:            ports.FormRequest{Values: []int64{7, 3, 1}, Spend: 5},
			expectedStatusCode: fiber.StatusUnprocessableEntity,
			expectedResponse:   testabilities.NewTestErrorResponse(t, app.NewFormMatcherError(hit.ErrNotEnoughFunds)),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			// given:
			fixture := server.NewServerTestFixture(t)

			// when:
			var actualResponse ports.Error

			res, _ := fixture.Client().
				R().
				SetHeader("Content-Type", "application/json").
				SetBody(tc.payload).
				SetError(&actualResponse).
				Post(tc.endpoint)

			// then:
			require.Equal(t, tc.expectedStatusCode, res.StatusCode())
			require.Equal(t, tc.expectedResponse, actualResponse)
		})
	}
}

func TestFormHandler_MatcherFailure(t *testing.T) {
	// given:
	matcher := testabilities.NewFormMatcherMock(t, testabilities.FormMatcherMockExpectations{
		Error:        testabilities.ErrTestNoopOpFailure,
		StandardCall: true,
	})
	fixture := server.NewServerTestFixture(t, server.WithFormMatcher(matcher))

	// when:
	var actualResponse ports.Error

	res, _ := fixture.Client().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(ports.FormRequest{Values: []int64{10, 10}, Spend: 5}).
		SetError(&actualResponse).
		Post("/api/v1/forms/standard")

	// then:
	require.Equal(t, fiber.StatusInternalServerError, res.StatusCode())
	require.Equal(t, testabilities.NewTestErrorResponse(t, app.NewFormMatcherError(testabilities.ErrTestNoopOpFailure)), actualResponse)
	matcher.AssertCalled()
}
