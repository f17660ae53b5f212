// Package mutate implements the parameter and structural mutation
// operators that turn a cloned parent into an offspring, and the
// copy-on-write wrapper, Apply, that every caller drives them through.
//
// Each operator is a free function taking an *core.Individual plus the
// owning *core.Species (needed for row/activation-vocabulary lookups) and
// a *rand.Rand; operators mutate their individual argument in place and
// report whether they made a change. Apply is the only entry point that
// validates and rolls back — operators themselves never call Validate, so
// a caller composing several operators in one Apply only pays for one
// validation pass.
package mutate
