// Package bootstrap drives a manifest against the machine.
//
// Targets are processed strictly one after another. Each one is read,
// reconciled in memory and written back before the next starts, and a
// failure only aborts its own target: the run continues and the failure is
// recorded in the Report.
package bootstrap
