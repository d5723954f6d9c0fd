// Package optimizer defines the configuration surface, trajectory records,
// state machine and sentinel errors of the divergence-regularized optimizer.
package optimizer

import (
	"errors"
	"math"
)

// Sentinel errors returned by the optimizer.
var (
	// ErrNilAnalyzer indicates that New received a nil divergence analyzer.
	ErrNilAnalyzer = errors.New("optimizer: divergence analyzer is nil")

	// ErrBadLayerSizes indicates LayerSizes with fewer than two layers or a
	// non-positive width.
	ErrBadLayerSizes = errors.New("optimizer: LayerSizes needs >= 2 layers of positive width")

	// ErrBadLearningRate indicates LearningRate <= 0 or non-finite.
	ErrBadLearningRate = errors.New("optimizer: LearningRate must be positive and finite")

	// ErrBadLambda indicates Lambda < 0 or non-finite.
	ErrBadLambda = errors.New("optimizer: Lambda must be non-negative and finite")

	// ErrBadThreshold indicates NashThreshold <= 0 or non-finite.
	ErrBadThreshold = errors.New("optimizer: NashThreshold must be positive and finite")

	// ErrBadMaxIterations indicates MaxIterations <= 0.
	ErrBadMaxIterations = errors.New("optimizer: MaxIterations must be positive")

	// ErrBadWindow indicates ConvergenceWindow <= 0.
	ErrBadWindow = errors.New("optimizer: ConvergenceWindow must be positive")

	// ErrBadBatch indicates an empty batch, mismatched input/target counts,
	// or a sample whose width does not match the network's layer sizes.
	ErrBadBatch = errors.New("optimizer: batch does not match network dimensions")

	// ErrNotTraining indicates a TrainStep on an optimizer already in a
	// terminal state (Converged, MaxIterationsReached or Failed).
	ErrNotTraining = errors.New("optimizer: optimizer is in a terminal state")

	// ErrNumericalInstability indicates a NaN or ±Inf activation, loss,
	// penalty value or weight. The optimizer fails fast and stays Failed.
	ErrNumericalInstability = errors.New("optimizer: numerical instability (NaN or Inf)")
)

// State is the optimizer lifecycle:
// Uninitialized → Training → Converged | MaxIterationsReached | Failed.
// Only Training accepts further TrainStep calls; MaxIterationsReached is a
// terminal state, not an error.
type State int

const (
	// StateUninitialized is the zero value; New never returns it.
	StateUninitialized State = iota

	// StateTraining accepts TrainStep calls.
	StateTraining

	// StateConverged means S(m) held at zero for a full convergence window.
	StateConverged

	// StateMaxIterationsReached means the iteration budget ran out first.
	StateMaxIterationsReached

	// StateFailed means a numerical instability was detected.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateTraining:
		return "Training"
	case StateConverged:
		return "Converged"
	case StateMaxIterationsReached:
		return "MaxIterationsReached"
	case StateFailed:
		return "Failed"
	default:
		return "Uninitialized"
	}
}

// PenaltyFunc maps a divergence value S to a regularization penalty in
// [0, 1]. It must be monotone non-decreasing in s and satisfy g(0) == 0 so
// that equilibrium carries no penalty.
type PenaltyFunc func(s int64) float64

// Phi is the golden ratio, the base of the default penalty decay.
const Phi = 1.618033988749895

// GoldenPenalty is the default PenaltyFunc: g(s) = 1 - φ^(-s). It is 0 at
// equilibrium and saturates toward 1 as the divergence grows.
func GoldenPenalty(s int64) float64 {
	return 1 - math.Pow(Phi, -float64(s))
}

// Config holds the optimizer hyperparameters as named, validated fields.
//
// LayerSizes        – widths of every layer, input first, e.g. {2, 6, 1}.
// LearningRate      – gradient-descent step size, > 0.
// Lambda            – weight of the divergence penalty, >= 0.
// NashThreshold     – quantization unit for the divergence index and the
//
//	equilibrium bound on S, > 0.
//
// MaxIterations     – iteration budget before MaxIterationsReached, > 0.
// ConvergenceWindow – consecutive equilibrium iterations required, > 0.
// Seed              – PRNG seed for Xavier initialization (reproducible runs).
// Penalty           – optional PenaltyFunc; nil selects GoldenPenalty.
type Config struct {
	LayerSizes        []int
	LearningRate      float64
	Lambda            float64
	NashThreshold     float64
	MaxIterations     int
	ConvergenceWindow int
	Seed              int64
	Penalty           PenaltyFunc
}

// DefaultConfig returns the configuration used throughout the examples:
// a 2-6-1 network, learning rate 0.1, λ = 0.1, Nash threshold 1e-3, 2000
// iterations, a 15-iteration convergence window and seed 1.
func DefaultConfig() Config {
	return Config{
		LayerSizes:        []int{2, 6, 1},
		LearningRate:      0.1,
		Lambda:            0.1,
		NashThreshold:     1e-3,
		MaxIterations:     2000,
		ConvergenceWindow: 15,
		Seed:              1,
	}
}

// validate checks every field and returns the per-field sentinel of the
// first violation.
func (c Config) validate() error {
	if len(c.LayerSizes) < 2 {
		return ErrBadLayerSizes
	}
	for _, w := range c.LayerSizes {
		if w <= 0 {
			return ErrBadLayerSizes
		}
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return ErrBadLearningRate
	}
	if c.Lambda < 0 || math.IsNaN(c.Lambda) || math.IsInf(c.Lambda, 0) {
		return ErrBadLambda
	}
	if c.NashThreshold <= 0 || math.IsNaN(c.NashThreshold) || math.IsInf(c.NashThreshold, 0) {
		return ErrBadThreshold
	}
	if c.MaxIterations <= 0 {
		return ErrBadMaxIterations
	}
	if c.ConvergenceWindow <= 0 {
		return ErrBadWindow
	}

	return nil
}

// TrajectoryRecord is one appended point of the training trajectory.
//
// Loss is the full regularized objective; DataLoss is the bare ‖y − ŷ‖²
// term; SN is the divergence value S(m) at this iteration's quantized loss
// level; LyapunovV is Loss²; GradientNorm is the Frobenius norm over all
// weight and bias gradients.
type TrajectoryRecord struct {
	Iteration    int
	Loss         float64
	DataLoss     float64
	SN           int64
	LyapunovV    float64
	GradientNorm float64
}
