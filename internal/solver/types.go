// internal/solver/types.go
//
// Shared types for the guess selectors.
// Defines:
//   - Item: a pool entry carrying the weight its selector scores with.
//   - Options: knobs for the opening word and each variant's policy.
//   - InvariantViolation: panic value for states that mean a filtering bug.

package solver

import (
	"errors"
	"fmt"
)

// DefaultOpening is the precomputed best first guess for the standard
// frequency dictionary.
const DefaultOpening = "tares"

// Item is one candidate secret. Weight is Freq after the selector's weighting
// policy; with the raw policy it equals Freq exactly.
type Item struct {
	Word   string
	Freq   uint64
	Weight float64
}

// Options configures a selector. The zero value of each policy field other
// than Exponent is neutral; use Neutral to get a fully neutral copy.
type Options struct {
	// Opening is returned on an empty history. Empty means "resolve from the
	// corpus" (see Opening).
	Opening string

	// Cutoff: pools smaller than this skip scoring and return the most
	// frequent candidate. 0 disables.
	Cutoff int

	// Exponent: popular weighting uses freq^Exponent. 1 is neutral.
	Exponent float64

	// Blend, Steepness, Midpoint shape the sigmoid weighting
	//   w = (1-Blend)*freq + Blend*maxFreq*σ(Steepness*(ln(1+freq) - Midpoint))
	// Blend 0 is neutral. Midpoint 0 means ln(1 + mean frequency).
	Blend     float64
	Steepness float64
	Midpoint  float64
}

// DefaultOptions are the settings the CLI starts from.
func DefaultOptions() Options {
	return Options{
		Opening:   DefaultOpening,
		Cutoff:    4,
		Exponent:  1.5,
		Blend:     1,
		Steepness: 1,
	}
}

// Neutral returns o with every policy deviation switched off. Selectors
// built from neutral options all pick the same words.
func (o Options) Neutral() Options {
	o.Cutoff = 0
	o.Exponent = 1
	o.Blend = 0
	return o
}

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrBadOpening      = errors.New("opening word not in dictionary")
)

// InvariantViolation is the panic value raised when scoring observes a state
// that correct filtering can never produce (an empty pool, bucket totals that
// do not add up).
type InvariantViolation struct {
	Reason string
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("solver: invariant violated: %s", v.Reason)
}
