// Package codegen turns the blocks of one actor into indented source text.
//
// A Registry maps opcodes to handlers. Expression handlers render value
// blocks; statement handlers write lines and recurse into nested bodies
// through the Context, which owns the traversal guards. Opcodes without a
// handler degrade to a categorized comment line.
package codegen
