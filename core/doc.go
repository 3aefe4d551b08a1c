// Package core provides the fundamental in-memory Graph used by the MMC
// engine. See types.go for the Graph type and its invariants.
package core
