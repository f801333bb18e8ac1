// Package crontab applies managed regions to the user's live crontab.
//
// The crontab is not an ordinary file: it is read and installed through the
// host scheduler. A Manager wraps region reconciliation in an acquire step
// (read the current table) and a commit step (install the reconciled table
// as a whole). A failed commit leaves the previously installed table in
// place, so no partial table is ever visible to cron.
package crontab
