// Package cache provides content-addressed memoization of encoded leaf
// values, so repeated literals in a document share one arena allocation
// instead of being re-encoded and re-allocated on every occurrence.
package cache
