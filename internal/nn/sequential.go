package nn

import (
	"fmt"

	"github.com/born-ml/tensorkit/internal/tensor"
)

// Sequential chains modules; each module's output is the next module's input.
//
// Example:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewDense(nn.DefaultDenseConfig(2, 3), src, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewDense(nn.DefaultDenseConfig(3, 3), src, backend),
//	    nn.NewSoftmax[Backend](),
//	)
//
//	probs := model.Forward(input)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a new Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{
		modules: modules,
	}
}

// Forward applies all modules in order. An empty Sequential returns input.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input

	for _, module := range s.modules {
		output = module.Forward(output)
	}

	return output
}

// Parameters returns the parameters of every module, in module order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// NamedParameters returns parameters keyed by module index and name,
// e.g. "0.weight", "0.bias", "2.weight".
func (s *Sequential[B]) NamedParameters() map[string]*Parameter[B] {
	named := make(map[string]*Parameter[B])

	for i, module := range s.modules {
		for _, p := range module.Parameters() {
			named[fmt.Sprintf("%d.%s", i, p.Name())] = p
		}
	}

	return named
}

// Add appends a module to the sequence.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
