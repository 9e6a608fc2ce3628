// Package toml provides the TOML implementation of config.Loader. It accepts
// the same settings as the HCL profile format, spelled as TOML keys and
// tables, for projects that already keep their tooling configuration in TOML.
package toml
