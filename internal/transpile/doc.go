// Package transpile runs the per-actor generation pipeline over a whole
// project. Actors are generated concurrently on a fixed pool of workers;
// results are always returned in input order.
package transpile
