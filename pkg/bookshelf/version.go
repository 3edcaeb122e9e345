// Package bookshelf holds build metadata for the shelf CLI.
package bookshelf

// Version is the released version of the shelf CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this project.
const ModulePath = "github.com/mesh-intelligence/bookshelf"
