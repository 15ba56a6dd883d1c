// SPDX-License-Identifier: MIT

package instance

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "instance")

// Sentinel errors returned by the instance package.
var (
	// ErrInvalidInstance indicates a document that fails structural validation.
	ErrInvalidInstance = errors.New("instance: invalid instance")

	// ErrUnknownLabel indicates a set label missing from Instance.Elements.
	ErrUnknownLabel = errors.New("instance: unknown element label")

	// ErrDuplicateLabel indicates the same element label listed twice.
	ErrDuplicateLabel = errors.New("instance: duplicate element label")

	// ErrUnknownFormat indicates an unsupported document format.
	ErrUnknownFormat = errors.New("instance: unknown format")

	// ErrBadCatalog indicates a malformed catalog row.
	ErrBadCatalog = errors.New("instance: malformed catalog")
)

// Set is one weighted candidate set.
//
// Elements and Labels may both be given; Resolve merges Labels into
// Elements through Instance.Elements.
type Set struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" msgpack:"name,omitempty"`
	Elements []int    `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty" msgpack:"elements,omitempty" validate:"dive,gte=0"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty" msgpack:"labels,omitempty" validate:"dive,required"`
	Weight   float64  `json:"weight" yaml:"weight" toml:"weight" msgpack:"weight" validate:"gte=0"`
	Info     string   `json:"info,omitempty" yaml:"info,omitempty" toml:"info,omitempty" msgpack:"info,omitempty"`
}

// Instance is a set cover problem document.
//
// Universe is the element count. Elements, when present, names every index
// of the universe (len(Elements) == Universe, or Universe == 0 and it is
// derived from Elements).
type Instance struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" msgpack:"name,omitempty"`
	Universe int      `json:"universe" yaml:"universe" toml:"universe" msgpack:"universe" validate:"gte=0"`
	Elements []string `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty" msgpack:"elements,omitempty" validate:"dive,required"`
	Sets     []Set    `json:"sets" yaml:"sets" toml:"sets" msgpack:"sets" validate:"dive"`
}

// instanceValidate is shared; validator.Validate caches struct metadata and
// is safe for concurrent use.
var instanceValidate *validator.Validate

func init() {
	instanceValidate = validator.New()
	instanceValidate.RegisterStructValidation(validateElementLabels, Instance{})
}

// validateElementLabels enforces len(Elements) == Universe when labels are given.
func validateElementLabels(sl validator.StructLevel) {
	in := sl.Current().Interface().(Instance)
	if len(in.Elements) > 0 && in.Universe != 0 && len(in.Elements) != in.Universe {
		sl.ReportError(in.Elements, "Elements", "elements", "eqlen_universe", "")
	}
}
