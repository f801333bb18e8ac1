// Package filesystem provides filesystem implementations for dotsetup.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem, whose writes replace files atomically, and an afero-backed
// filesystem for tests.
package filesystem
