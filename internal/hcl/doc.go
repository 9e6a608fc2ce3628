// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for profile file discovery, parsing, and the
// translation of HCL values (via cty) into the format-agnostic config.Profile.
package hcl
