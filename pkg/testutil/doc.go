// Package testutil provides utilities for testing dotsetup components.
//
// Key components:
//   - TestEnvironment: home directory plus filesystem, in memory or on disk
//   - MockRunner: scripted executor.Runner for command boundaries
//   - FakeTable: in-memory crontab
//   - FailingFS: filesystem wrapper that injects errors per path
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Only filesystem tests need EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
