// Package activation implements the fixed, exhaustive activation-function
// vocabulary used by node evaluation: Linear, Tanh, Sigmoid, ReLU,
// LeakyReLU, ELU, Softsign, Softplus, Sin, Gaussian, and GELU.
//
// Every function operates on float32 and takes a fixed four-slot parameter
// vector, even though most activations ignore it; this keeps Individual's
// per-node parameter storage a uniform Structure-of-Arrays block regardless
// of which activation a node ends up choosing.
//
// Tanh and GELU deliberately use the explicit (e^2x-1)/(e^2x+1) form rather
// than a library hyperbolic-tangent intrinsic: this avoids platform/vendor
// intrinsic quirks (notably on GPU PTX JITs, see the engine's GPU-handoff
// design notes) and keeps CPU and GPU backends bit-comparable.
package activation
