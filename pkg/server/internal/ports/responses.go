package ports

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
)

// Error is the body of every failed response.
type Error struct {
	Message string `json:"message"`
}

// FormRequest is the body of the form matching endpoints.
type FormRequest struct {
	Values []int64 `json:"values"`
	Spend  int64   `json:"spend"`
}

// FormResponse is a matched transaction form.
type FormResponse struct {
	Form    string  `json:"form"`
	Inputs  []int64 `json:"inputs"`
	Outputs []int64 `json:"outputs"`
}

// Tally counts sends by the forms they comply with.
type Tally struct {
	Both          int `json:"both"`
	StandardOnly  int `json:"standard_only"`
	AlternateOnly int `json:"alternate_only"`
	Neither       int `json:"neither"`
}

// WalletSimulationResponse is the evaluation of a single wallet.
type WalletSimulationResponse struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Tally  Tally  `json:"tally"`
}

// NewFormSuccessResponse converts a FormDTO into the response body.
func NewFormSuccessResponse(dto *app.FormDTO) FormResponse {
	return FormResponse{
		Form:    dto.Kind,
		Inputs:  dto.Inputs,
		Outputs: dto.Outputs,
	}
}

// NewWalletSimulationSuccessResponse converts a WalletSimulationDTO into the response body.
func NewWalletSimulationSuccessResponse(dto *app.WalletSimulationDTO) WalletSimulationResponse {
	return WalletSimulationResponse{
		Label:  dto.Label,
		Status: dto.Status,
		Reason: dto.Reason,
		Tally: Tally{
			Both:          dto.Tally.Both,
			StandardOnly:  dto.Tally.StandardOnly,
			AlternateOnly: dto.Tally.AlternateOnly,
			Neither:       dto.Tally.Neither,
		},
	}
}
