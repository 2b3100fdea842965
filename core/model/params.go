package model

import (
	"encoding/json"
	"io"

	"github.com/aross50/465LinRegression/pkg/errors"
)

// ParamsFormatVersion is written into every exported parameter file.
const ParamsFormatVersion = "1.0"

// ModelParams is the serialised form of a fitted linear model.
type ModelParams struct {
	// ModelType names the estimator, e.g. "LinearRegression".
	ModelType string `json:"model_type"`

	// Version of the file format.
	Version string `json:"version"`

	// Solver used to obtain the parameters.
	Solver string `json:"solver,omitempty"`

	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`

	// NSamples is the number of samples the model was fitted on.
	NSamples int `json:"n_samples,omitempty"`

	IsFitted bool `json:"is_fitted"`
}

// Validate checks that the parameters describe a usable model.
func (p *ModelParams) Validate() error {
	if p.ModelType == "" {
		return errors.NewValidationError("model_type", "is required", p.ModelType)
	}
	if p.Version != ParamsFormatVersion {
		return errors.NewValidationError("version", "unsupported format version", p.Version)
	}
	if !p.IsFitted && len(p.Coefficients) > 0 {
		return errors.NewValidationError("coefficients", "unfitted model should not have coefficients", p.Coefficients)
	}
	if p.IsFitted && len(p.Coefficients) == 0 {
		return errors.NewValidationError("coefficients", "fitted model must have coefficients", p.Coefficients)
	}
	values := append([]float64{p.Intercept}, p.Coefficients...)
	return errors.CheckNumericalStability("ModelParams.Validate", values, 0)
}

// WriteJSON encodes the parameters as indented JSON.
func (p *ModelParams) WriteJSON(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(p); err != nil {
		return errors.Wrap(err, "failed to encode model params")
	}
	return nil
}

// ReadParamsJSON decodes and validates parameters written by WriteJSON.
func ReadParamsJSON(r io.Reader) (*ModelParams, error) {
	var p ModelParams
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "failed to decode model params")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
