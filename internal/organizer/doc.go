// Package organizer performs the single organize pass: validate the target
// directory, provision one folder per category, snapshot the top-level files,
// and move each file into its category with collision-safe renaming.
//
// The pass is strictly sequential. Per-file failures are logged, recorded on
// the report, and never abort the run; only validation and provisioning
// failures are fatal. A cancellation between file moves stops the run cleanly
// with already-moved files left in place and a partial report.
package organizer
