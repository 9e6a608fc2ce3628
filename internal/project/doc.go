// Package project locates and decodes a block-based project, given either as
// an extracted directory or as a packaged .sb3 archive.
package project
