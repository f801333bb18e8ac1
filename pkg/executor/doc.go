// Package executor runs external commands with a timeout and captures
// their output.
//
// It is the only place that spawns processes. The crontab boundary runs
// `crontab -l` and `crontab <file>` through the Runner interface, which
// tests replace with testutil.MockRunner.
package executor
