// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface used to read settings files.
//
// The Model only records values that a file actually set; the cli package
// layers those values under the command line flags. Concrete loaders, such
// as the HCL one, live in separate packages.
package config
