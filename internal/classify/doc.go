// Package classify turns release filenames into ordered token sequences.
//
// Classification is layered heuristics rather than a grammar:
//
//   - Admission predicates (Skip, IsAnime) cheaply reject files that are not
//     video or do not have the bracket-tag shape of a release.
//   - Tokenize extracts every [bracketed] tag left to right and classifies
//     its content with ClassifyTag: known groups, hashes, a few fixed
//     phrases, noise markers, and finally word splitting on a fixed list of
//     delimiters where every word must satisfy one of the word classifiers.
//   - The text outside brackets is matched against the
//     "Title - 05[v2][ END]" episode pattern.
//
// Nothing here returns an error. Tags that cannot be classified are dropped
// from the token list, logged, and reported in Result.Failures so callers
// can judge coverage. A Classifier is immutable after New and safe for
// concurrent use; batch callers may classify filenames in parallel.
package classify
