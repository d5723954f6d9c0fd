package optimizer

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/zeckmath/matrix"
)

// network is the optimizer-owned NetworkState: one weight matrix and one
// bias vector per layer transition. weights[l] has shape
// sizes[l+1] × sizes[l], so a forward step is act(W·h + b).
type network struct {
	sizes   []int
	weights []*matrix.Dense
	biases  [][]float64
}

// newNetwork builds a Xavier-initialized network from a seeded PRNG:
// weights are drawn uniformly from ±sqrt(6/(fanIn+fanOut)), biases start at
// zero. The fill order (layer by layer, row-major) fixes the PRNG
// consumption, so equal seeds give equal networks.
func newNetwork(sizes []int, seed int64) (*network, error) {
	rng := rand.New(rand.NewSource(seed))
	n := &network{sizes: sizes}
	for l := 0; l+1 < len(sizes); l++ {
		fanIn, fanOut := sizes[l], sizes[l+1]
		w, err := matrix.NewDense(fanOut, fanIn)
		if err != nil {
			return nil, err
		}
		limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
		for i := 0; i < fanOut; i++ {
			for j := 0; j < fanIn; j++ {
				if err := w.Set(i, j, (rng.Float64()*2-1)*limit); err != nil {
					return nil, err
				}
			}
		}
		n.weights = append(n.weights, w)
		n.biases = append(n.biases, make([]float64, fanOut))
	}

	return n, nil
}

// sigmoid is the output-layer activation.
func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// forward runs one sample through the network and returns the activations
// of every layer, input first. Hidden layers use tanh, the output layer
// sigmoid.
func (n *network) forward(x []float64) ([][]float64, error) {
	acts := make([][]float64, 0, len(n.sizes))
	acts = append(acts, x)

	h := x
	last := len(n.weights) - 1
	for l, w := range n.weights {
		z, err := matrix.MatVec(w, h)
		if err != nil {
			return nil, err
		}
		for i := range z {
			z[i] += n.biases[l][i]
			if l == last {
				z[i] = sigmoid(z[i])
			} else {
				z[i] = math.Tanh(z[i])
			}
		}
		acts = append(acts, z)
		h = z
	}

	return acts, nil
}

// backward accumulates the summed-squared-error gradients of one sample
// into gradW/gradB. The output delta is 2e·σ'(z) = 2e·o·(1−o) per unit;
// hidden deltas propagate through Wᵀ with the tanh derivative 1−h².
// Gradients are summed over the batch, never averaged: the loss is the sum
// ‖y − ŷ‖², so its gradient is too.
func (n *network) backward(acts [][]float64, target []float64, gradW []*matrix.Dense, gradB [][]float64) error {
	last := len(n.weights)
	out := acts[last]

	delta := make([]float64, len(out))
	for j := range out {
		e := out[j] - target[j]
		delta[j] = 2 * e * out[j] * (1 - out[j])
	}

	for l := last - 1; l >= 0; l-- {
		outer, err := matrix.Outer(delta, acts[l])
		if err != nil {
			return err
		}
		if err := matrix.AddScaled(gradW[l], outer, 1); err != nil {
			return err
		}
		for j := range delta {
			gradB[l][j] += delta[j]
		}
		if l == 0 {
			break
		}

		wt, err := matrix.Transpose(n.weights[l])
		if err != nil {
			return err
		}
		back, err := matrix.MatVec(wt, delta)
		if err != nil {
			return err
		}
		h := acts[l]
		for i := range back {
			back[i] *= 1 - h[i]*h[i]
		}
		delta = back
	}

	return nil
}
