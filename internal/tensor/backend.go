package tensor

// Backend performs the storage-level computation behind Tensor methods.
//
// Every method returns a freshly allocated RawTensor and never modifies its
// inputs. Shape preconditions are checked by the Tensor layer before a
// backend is called; backends re-check them and panic on violation.
//
// Closure-driven operations (Apply, Any, All, IndexCols) run in the
// Tensor layer and are not part of this interface.
type Backend interface {
	// Element-wise binary operations on identical extents.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations. The scalar's Go type matches the tensor's dtype.
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// MatMul contracts (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose swaps rows and columns.
	Transpose(x *RawTensor) *RawTensor

	// Expand broadcasts x to shape. Extents of 1 are repeated.
	Expand(x *RawTensor, shape Shape) *RawTensor

	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor

	// Reductions. Sum and Max return a 1x1 tensor. SumDim, MaxDim and
	// Argmax collapse the given axis: AxisRow yields Rx1, AxisCol 1xC.
	Sum(x *RawTensor) *RawTensor
	Max(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, axis Axis) *RawTensor
	MaxDim(x *RawTensor, axis Axis) *RawTensor
	Argmax(x *RawTensor, axis Axis) *RawTensor // int32 result

	// Equal compares element-wise and returns a bool tensor.
	Equal(a, b *RawTensor) *RawTensor

	// Cast converts to another dtype. Bool converts to 0/1.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	Name() string
	Device() Device
}
