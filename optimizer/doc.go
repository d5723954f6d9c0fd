// Package optimizer implements divergence-regularized gradient descent: a
// small feed-forward network trained by full-batch backpropagation whose
// loss carries a penalty term driven by the Fibonacci–Lucas divergence
// sequence, and whose convergence criterion is a sustained Nash equilibrium
// of that sequence.
//
// Overview:
//
//   - The network is a chain of affine layers h' = act(W·h + b) with tanh
//     hidden units and a sigmoid output layer, Xavier-initialized from a
//     seeded PRNG so every run is reproducible.
//   - The data loss is the summed squared error ‖y − ŷ‖² over the batch.
//     Each iteration quantizes it in Nash-threshold units,
//     m = ⌊‖y − ŷ‖² / NashThreshold⌋, and reads S(m) from the injected
//     divergence.Analyzer. The reported loss is
//
//	L = ‖y − ŷ‖² + λ·g(S(m))
//
//     with g the caller-supplied monotone penalty (default 1 − φ^(−s)).
//     Quantizing the data loss keeps the penalty driven by the divergence
//     sequence while tying equilibrium to actual training progress.
//   - lyapunov_V = L² is recorded per iteration as a stability diagnostic.
//     StabilityFraction reports how often it strictly decreased; the
//     optimizer never judges the fraction itself.
//   - Convergence: S(m) == 0 sustained over ConvergenceWindow consecutive
//     iterations moves the state to Converged. MaxIterations exhaustion is
//     the non-error terminal state MaxIterationsReached.
//   - Numeric policy is fail-fast: any NaN/±Inf activation, loss, penalty
//     value or weight moves the state to Failed and surfaces
//     ErrNumericalInstability; further steps are rejected.
//
// Ownership:
//
//   - An Optimizer owns its NetworkState exclusively and mutates it only in
//     TrainStep. The Analyzer handed to New becomes optimizer-owned too
//     (analyzers are single-consumer); share the sequence.Generator behind
//     it instead.
//
// Error handling (sentinel errors):
//
//   - Per-field config sentinels (ErrBadLayerSizes, ErrBadLearningRate,
//     ErrBadLambda, ErrBadThreshold, ErrBadMaxIterations, ErrBadWindow).
//   - ErrNilAnalyzer, ErrBadBatch, ErrNotTraining, ErrNumericalInstability.
//
// API reference:
//
//	DefaultConfig() Config
//	New(cfg Config, an *divergence.Analyzer) (*Optimizer, error)
//	(*Optimizer) TrainStep(inputs, targets [][]float64) (TrajectoryRecord, error)
//	(*Optimizer) Fit(inputs, targets [][]float64) (State, error)
//	(*Optimizer) Predict(x []float64) ([]float64, error)
//	(*Optimizer) State() State
//	(*Optimizer) History() []TrajectoryRecord
//	(*Optimizer) StabilityFraction() float64
//	GoldenPenalty(s int64) float64
//
// See also:
//
//   - divergence.Analyzer: source of the S(m) equilibrium signal.
//   - matrix: the dense kernels every forward/backward pass runs on.
package optimizer
