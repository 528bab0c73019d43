// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run pipeline that reads the reference
// and target label files, quantizes the target, and writes the result,
// decoupled from any specific entrypoint like a CLI.
package app
