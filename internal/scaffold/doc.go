// Package scaffold persists generated actors as an output project: one
// source file per actor, a manifest and a copy of the project's assets.
package scaffold
