// Package app contains the core application logic. It defines the App
// struct, its configuration, and the run that expands every template of a
// packaging tree, decoupled from any specific entrypoint like a CLI.
package app
