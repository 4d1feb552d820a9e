// Package probe wraps ffprobe JSON output and derives the release tokens a
// media container reveals on its own.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//
// Inspect executes ffprobe and returns the parsed Result. Result.Tokens maps
// streams onto VideoQuality, AudioQuality and language tokens so callers can
// compare them with what a filename claims.
package probe
