package optimizer

import (
	"math"

	"github.com/katalvlaran/zeckmath/divergence"
	"github.com/katalvlaran/zeckmath/matrix"
)

// divergenceIndexCap bounds the quantized loss level fed to the analyzer,
// so a diverging loss cannot force unbounded analyzer growth. S is non-zero
// essentially everywhere at this magnitude, so capping never fakes an
// equilibrium.
const divergenceIndexCap = 1 << 20

// Optimizer trains one network under the divergence-regularized objective.
// It owns its NetworkState and the injected Analyzer exclusively; create
// one Optimizer per training run.
type Optimizer struct {
	cfg     Config
	an      *divergence.Analyzer
	penalty PenaltyFunc
	net     *network
	state   State
	iter    int
	streak  int // consecutive iterations with S(m) == 0
	history []TrajectoryRecord
}

// New validates cfg, Xavier-initializes the network from cfg.Seed, and
// returns an Optimizer in StateTraining.
func New(cfg Config, an *divergence.Analyzer) (*Optimizer, error) {
	if an == nil {
		return nil, ErrNilAnalyzer
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	net, err := newNetwork(cfg.LayerSizes, cfg.Seed)
	if err != nil {
		return nil, err
	}
	penalty := cfg.Penalty
	if penalty == nil {
		penalty = GoldenPenalty
	}

	return &Optimizer{cfg: cfg, an: an, penalty: penalty, net: net, state: StateTraining}, nil
}

// State returns the current lifecycle state.
func (o *Optimizer) State() State { return o.state }

// History returns a copy of the full training trajectory so far.
func (o *Optimizer) History() []TrajectoryRecord {
	out := make([]TrajectoryRecord, len(o.history))
	copy(out, o.history)

	return out
}

// StabilityFraction reports the fraction of consecutive recorded iterations
// in which lyapunov_V strictly decreased. Diagnostic only: the optimizer
// records it, callers judge it.
func (o *Optimizer) StabilityFraction() float64 {
	if len(o.history) < 2 {
		return 0
	}
	decreases := 0
	for i := 1; i < len(o.history); i++ {
		if o.history[i].LyapunovV < o.history[i-1].LyapunovV {
			decreases++
		}
	}

	return float64(decreases) / float64(len(o.history)-1)
}

// Predict runs one input through the current network. Usable in any state;
// does not mutate the optimizer.
func (o *Optimizer) Predict(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, o.cfg.LayerSizes[0]); err != nil {
		return nil, ErrBadBatch
	}
	acts, err := o.net.forward(x)
	if err != nil {
		return nil, err
	}

	return acts[len(acts)-1], nil
}

// validateBatch checks batch shape against the network dimensions.
func (o *Optimizer) validateBatch(inputs, targets [][]float64) error {
	if len(inputs) == 0 || len(inputs) != len(targets) {
		return ErrBadBatch
	}
	in, out := o.cfg.LayerSizes[0], o.cfg.LayerSizes[len(o.cfg.LayerSizes)-1]
	for s := range inputs {
		if len(inputs[s]) != in || len(targets[s]) != out {
			return ErrBadBatch
		}
	}

	return nil
}

// fail moves the optimizer to the terminal Failed state.
func (o *Optimizer) fail() (TrajectoryRecord, error) {
	o.state = StateFailed

	return TrajectoryRecord{}, ErrNumericalInstability
}

// TrainStep performs one full-batch gradient-descent iteration, appends a
// TrajectoryRecord and advances the state machine. Only legal in
// StateTraining.
//
// One step: forward + backward over the whole batch, quantize the data loss
// to m = ⌊‖y−ŷ‖²/NashThreshold⌋, read S(m), assemble the regularized loss
// and lyapunov_V, record, descend, then check the equilibrium window and
// the iteration budget.
func (o *Optimizer) TrainStep(inputs, targets [][]float64) (TrajectoryRecord, error) {
	if o.state != StateTraining {
		return TrajectoryRecord{}, ErrNotTraining
	}
	if err := o.validateBatch(inputs, targets); err != nil {
		return TrajectoryRecord{}, err
	}

	// Fresh gradient accumulators per step.
	gradW := make([]*matrix.Dense, len(o.net.weights))
	gradB := make([][]float64, len(o.net.biases))
	for l := range gradW {
		g, err := matrix.NewDense(o.net.weights[l].Rows(), o.net.weights[l].Cols())
		if err != nil {
			return TrajectoryRecord{}, err
		}
		gradW[l] = g
		gradB[l] = make([]float64, len(o.net.biases[l]))
	}

	sse := 0.0
	for s := range inputs {
		acts, err := o.net.forward(inputs[s])
		if err != nil {
			return TrajectoryRecord{}, err
		}
		out := acts[len(acts)-1]
		if err := matrix.ValidateFiniteVec(out); err != nil {
			return o.fail()
		}
		for j := range out {
			e := out[j] - targets[s][j]
			sse += e * e
		}
		if err := o.net.backward(acts, targets[s], gradW, gradB); err != nil {
			return TrajectoryRecord{}, err
		}
	}
	if math.IsNaN(sse) || math.IsInf(sse, 0) {
		return o.fail()
	}

	// Quantize the data loss in Nash-threshold units and read the
	// divergence at that level.
	level := sse / o.cfg.NashThreshold
	m := divergenceIndexCap
	if level < float64(divergenceIndexCap) {
		m = int(level)
	}
	sn, err := o.an.S(m)
	if err != nil {
		return TrajectoryRecord{}, err
	}

	g := o.penalty(sn)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return o.fail()
	}
	loss := sse + o.cfg.Lambda*g

	// Frobenius norm over every gradient, weights and biases together.
	normSq := 0.0
	for l := range gradW {
		n, err := matrix.FrobeniusNorm(gradW[l])
		if err != nil {
			return TrajectoryRecord{}, err
		}
		normSq += n * n
		for _, v := range gradB[l] {
			normSq += v * v
		}
	}

	rec := TrajectoryRecord{
		Iteration:    o.iter,
		Loss:         loss,
		DataLoss:     sse,
		SN:           sn,
		LyapunovV:    loss * loss,
		GradientNorm: math.Sqrt(normSq),
	}
	o.history = append(o.history, rec)
	o.iter++

	// Descend and enforce the finiteness policy on the updated weights.
	for l := range gradW {
		if err := matrix.AddScaled(o.net.weights[l], gradW[l], -o.cfg.LearningRate); err != nil {
			return TrajectoryRecord{}, err
		}
		for j := range gradB[l] {
			o.net.biases[l][j] -= o.cfg.LearningRate * gradB[l][j]
		}
		if err := matrix.ValidateFinite(o.net.weights[l]); err != nil {
			return o.fail()
		}
	}

	// S is integral, so S < NashThreshold collapses to S == 0.
	if sn == 0 {
		o.streak++
	} else {
		o.streak = 0
	}
	switch {
	case o.streak >= o.cfg.ConvergenceWindow:
		o.state = StateConverged
	case o.iter >= o.cfg.MaxIterations:
		o.state = StateMaxIterationsReached
	}

	return rec, nil
}

// Fit loops TrainStep on a fixed batch until the optimizer leaves
// StateTraining, returning the terminal state. Bounded by MaxIterations.
func (o *Optimizer) Fit(inputs, targets [][]float64) (State, error) {
	for o.state == StateTraining {
		if _, err := o.TrainStep(inputs, targets); err != nil {
			return o.state, err
		}
	}

	return o.state, nil
}
