// Package gnlineage finds taxonomic lineages and last common ancestors
// of biological names using NCBI taxonomy dump files.
package gnlineage

var (
	// Version of gnlineage, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
