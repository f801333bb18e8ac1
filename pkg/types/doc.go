// Package types holds the filesystem interface shared by the file boundary
// packages, so they can run against the OS or an in-memory filesystem.
package types
