// Package graph provides the typed, immutable in-memory view of one actor's
// block graph. Its core purpose is to turn loosely shaped project data into a
// predictable structure that code generation can walk without re-checking
// shapes at every step.
//
// # Core Concepts
//
//   - Block: the atomic node. It carries an opcode, fields, inputs, optional
//     mutation metadata and an optional `next` link to the following statement.
//
//   - Input: either a literal value or a reference to another block. Literal
//     values are represented as cty values so numbers, strings and booleans
//     keep their identity through the pipeline.
//
//   - Model: the id-keyed block map for one actor plus its declared
//     variables, lists and broadcasts. First-seen order of the block map is
//     preserved because entry-point resolution must be reproducible.
//
// # Tolerance
//
// Project files are produced by many tools and are frequently malformed.
// Absent fields and inputs default to empty maps, unknown shapes degrade to
// empty values, and dangling references are kept as-is. The only error New
// returns is for a block container that is not an object at all.
//
// # Declarations
//
// Variables and lists arrive in one of two shapes: an ordered sequence of
// [name, value] pairs, or an object keyed by internal id whose values are
// [name, value] pairs. Both are normalized once at ingestion.
package graph
