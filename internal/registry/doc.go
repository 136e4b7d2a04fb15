// Package registry holds the template registry: the layouts "apiscaffold init"
// can generate, the folders and files each one owns, and the npm dependencies the
// generated code needs. The registry is an embedded layouts.yaml validated against
// an embedded JSON Schema, plus the template sources it points at.
package registry
