// Package pantry exposes module-level metadata.
package pantry

// Version is the semantic version of the pantry module.
const Version = "0.1.0"
