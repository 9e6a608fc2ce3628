// Package config defines the format-agnostic transpiler profile, along with
// the Loader interface for reading profiles from various sources.
//
// The `config.Profile` is the single source of truth for the `decls`,
// `codegen` and `transpile` packages. It carries the generation limits and the
// migration-specific compatibility shims (fallback variables, the seed list
// and the free-variable allow-list) as named, overridable entries. Concrete
// loaders, such as for HCL, are provided in separate packages.
package config
