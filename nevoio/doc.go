// Package nevoio serializes a Species and its Individuals to a compact
// binary layout (spec §6.4): magic, version, row descriptors, the sorted
// edge array, per-node activation vocabulary, and max-in-degree for a
// species; species id, weights, biases, node params, activations,
// fitness, and age for an individual. Round-trips bit-exactly.
//
// encoding/binary over a fixed little-endian layout was chosen rather
// than a schema-based serializer; see DESIGN.md for why.
package nevoio
