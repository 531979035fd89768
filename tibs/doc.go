// Package tibs implements the textual, JSON-superset companion syntax for
// Nibs: a streaming tokenizer over a borrowed byte buffer, and a recursive
// descent driver that turns a token stream directly into arena-resident
// Nibs nodes via the codec package's encoders.
package tibs
