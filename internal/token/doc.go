// Package token defines the vocabulary of classification outcomes produced when
// a release filename is tokenized.
//
// A Token is a small comparable value: one Kind plus a payload. Every kind
// carries a string payload except EpisodeNumber, which carries an integer.
// Two tokens are equal when both kind and payload match, so tokens can be
// compared with == and used as map keys. Token sequences keep extraction
// order; nothing in this package merges or deduplicates them.
package token
