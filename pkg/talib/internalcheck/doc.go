// Package internalcheck holds source-level policy tests for talib-go.
//
// The tests load the module with golang.org/x/tools/go/packages and inspect
// imports and exported signatures. Nothing in this package is meant to be
// imported.
package internalcheck
