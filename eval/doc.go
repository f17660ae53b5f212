// Package eval implements the forward evaluator: the single hot path that
// turns an environment observation into a controller's action vector. It
// reproduces the four-step row-sweep algorithm exactly — scratch array
// zeroed, inputs copied in, each row's edges then biases-and-activations
// applied in row order, outputs copied out — with float32 arithmetic
// throughout to match package activation's numerics.
package eval
