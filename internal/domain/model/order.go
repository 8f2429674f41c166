// Package model defines the core domain entities for the bag pricing service.
package model

import (
	"errors"
	"strings"
)

// BagType is the film family a bag is made of.
type BagType string

const (
	// BagTypeBOPP is biaxially oriented polypropylene film.
	BagTypeBOPP BagType = "BOPP"
	// BagTypeCPP is cast polypropylene film.
	BagTypeCPP BagType = "CPP"
)

// IsValid reports whether t is a known bag family.
func (t BagType) IsValid() bool {
	return t == BagTypeBOPP || t == BagTypeCPP
}

// ProductKind is the product category. Only bags are priced today.
type ProductKind string

// ProductKindBag is the default and only product kind.
const ProductKindBag ProductKind = "bag"

const (
	// EuroslotPVD is a euroslot die-cut priced at the PVD rate.
	EuroslotPVD = "pvd"
	// EuroslotBOPP is a euroslot die-cut priced at the BOPP rate.
	EuroslotBOPP = "bopp"

	// DefaultPrintScheme is used when the order does not name one ("no print").
	DefaultPrintScheme = "б/печати"
)

var (
	// ErrConflictingTapes is returned when both glue tape and dead tape are requested.
	ErrConflictingTapes = &ValidationError{Field: "features", Message: "glue_tape and dead_tape are mutually exclusive"}
	// ErrInvalidEuroslot is returned for an unknown euroslot variant.
	ErrInvalidEuroslot = &ValidationError{Field: "features.euroslot", Message: "must be one of: pvd, bopp"}
	// ErrInvalidBagType is returned for an unknown bag family.
	ErrInvalidBagType = &ValidationError{Field: "product_type", Message: "must be one of: BOPP, CPP"}
	// ErrInvalidProductKind is returned for an unsupported product kind.
	ErrInvalidProductKind = &ValidationError{Field: "product_kind", Message: "must be: bag"}
	// ErrInvalidQuantity is returned when quantity is not positive.
	ErrInvalidQuantity = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
)

// ValidationError describes an input that was rejected before pricing.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Features are the optional bag features that carry extra cost.
// Build them with NewFeatures so that invalid combinations never reach pricing.
type Features struct {
	IsWicket bool   `json:"is_wicket"`
	GlueTape bool   `json:"glue_tape"`
	DeadTape bool   `json:"dead_tape"`
	Euroslot string `json:"euroslot,omitempty"`
	Clips    bool   `json:"clips"`
}

// NewFeatures validates and normalizes a feature set.
// Clips are silently dropped for non-wicket bags.
func NewFeatures(isWicket, glueTape, deadTape bool, euroslot string, clips bool) (Features, error) {
	if glueTape && deadTape {
		return Features{}, ErrConflictingTapes
	}
	euroslot = strings.TrimSpace(euroslot)
	if euroslot != "" && !strings.EqualFold(euroslot, EuroslotPVD) && !strings.EqualFold(euroslot, EuroslotBOPP) {
		return Features{}, ErrInvalidEuroslot
	}
	if !isWicket {
		clips = false
	}
	return Features{
		IsWicket: isWicket,
		GlueTape: glueTape,
		DeadTape: deadTape,
		Euroslot: euroslot,
		Clips:    clips,
	}, nil
}

// OrderInput is an immutable bag order. Dimensions are in cm,
// thickness in microns.
type OrderInput struct {
	ProductKind ProductKind `json:"product_kind"`
	ProductType BagType     `json:"product_type"`
	Width       float64     `json:"width"`
	Fold        float64     `json:"fold"`
	Length      float64     `json:"length"`
	Flap        float64     `json:"flap"`
	Thickness   float64     `json:"thickness"`
	Quantity    int         `json:"quantity"`
	PrintScheme string      `json:"print_scheme"`
	Features    Features    `json:"features"`
}

// NewOrderInput validates an order. Features must already come from NewFeatures.
func NewOrderInput(o OrderInput) (OrderInput, error) {
	if o.ProductKind == "" {
		o.ProductKind = ProductKindBag
	}
	if o.ProductKind != ProductKindBag {
		return OrderInput{}, ErrInvalidProductKind
	}
	if !o.ProductType.IsValid() {
		return OrderInput{}, ErrInvalidBagType
	}
	if err := positive("width", o.Width); err != nil {
		return OrderInput{}, err
	}
	if err := positive("length", o.Length); err != nil {
		return OrderInput{}, err
	}
	if err := positive("thickness", o.Thickness); err != nil {
		return OrderInput{}, err
	}
	if err := nonNegative("fold", o.Fold); err != nil {
		return OrderInput{}, err
	}
	if err := nonNegative("flap", o.Flap); err != nil {
		return OrderInput{}, err
	}
	if o.Quantity <= 0 {
		return OrderInput{}, ErrInvalidQuantity
	}
	if o.Features.GlueTape && o.Features.DeadTape {
		return OrderInput{}, ErrConflictingTapes
	}
	if !o.Features.IsWicket {
		o.Features.Clips = false
	}
	if o.PrintScheme == "" {
		o.PrintScheme = DefaultPrintScheme
	}
	return o, nil
}

func positive(field string, v float64) error {
	if !(v > 0) {
		return &ValidationError{Field: field, Message: "must be greater than 0"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if !(v >= 0) {
		return &ValidationError{Field: field, Message: "must be greater than or equal to 0"}
	}
	return nil
}
