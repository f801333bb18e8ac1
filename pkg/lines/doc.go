// Package lines holds the line-level primitives shared by the region
// reconciler and the anchor aligner.
//
// A file is handled as a Document: its lines split on "\n" plus whether the
// content ended with a newline. A carriage return stays attached to its line,
// so CRLF files and mixed endings survive a parse/serialize round trip
// byte-for-byte. Comparisons against marker text use Text, which ignores that
// trailing "\r".
package lines
