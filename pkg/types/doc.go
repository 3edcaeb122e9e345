// Package types defines the Book entity, the persistence Adapter interface,
// backend configuration, and the standard errors for the bookshelf catalog.
package types
