// Package region reconciles managed regions: spans of a text file bracketed
// by a start and an end marker line whose content is owned by dotsetup.
//
// Reconcile is a pure transform over a slice of lines. Running it twice with
// the same arguments yields the same lines as running it once, and every line
// outside the marker pair is returned exactly as it was read. When a file
// holds more than one complete pair for the same markers, the first pair is
// the region; later pairs are reported as warnings and left alone.
//
// The caller owns all I/O: read the file, call Reconcile or Remove, and write
// Result.Lines back when Result.Changed is set.
package region
