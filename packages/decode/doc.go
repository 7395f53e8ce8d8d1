// Package decode turns raw response bodies into Go values.
//
// Decoders are tried in order and the first one that accepts the input wins.
// When none accepts it the body is returned unchanged as a string. Every
// Result is tagged with the Format that produced it, so callers never have
// to guess whether they got a parsed document or the raw text back.
package decode
