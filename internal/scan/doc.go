// Package scan applies the admission gate and the classifier to whole
// directory trees, lists of bare names, and files arriving in a watched
// directory.
//
// Classification work fans out over a bounded errgroup pool. Outcomes come
// back sorted so repeated scans of the same tree print identically.
package scan
