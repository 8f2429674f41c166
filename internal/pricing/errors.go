package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompletePipeline is returned when every step ran but none produced
	// the terminal result. It indicates a misconfigured step list.
	ErrIncompletePipeline = errors.New("pipeline finished without a final result")
	// ErrProviderNotTrained is returned by the predictive scrap provider until a
	// trained model is available.
	ErrProviderNotTrained = errors.New("predictive scrap model is not trained")
	// ErrResultAlreadySet is returned when a second step tries to set the result.
	ErrResultAlreadySet = errors.New("final result already set")
)

// MissingDependencyError reports a step reading an intermediate that no
// earlier step wrote. It is a wiring defect, never a user error.
type MissingDependencyError struct {
	Key Intermediate
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("step dependency not found: %s", e.Key)
}

// MissingFeatureRateError reports an active feature whose rate key is absent
// from the configuration.
type MissingFeatureRateError struct {
	Key string
}

func (e *MissingFeatureRateError) Error() string {
	return fmt.Sprintf("feature rate not configured: %s", e.Key)
}

// StepError wraps an error with the name of the step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
