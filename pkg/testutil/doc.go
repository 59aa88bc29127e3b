// Package testutil builds isolated package trees for tests.
//
// A TestEnvironment owns a temporary root directory and home directory and
// points HOME and the home-symlink environment variables at them, so tests
// never touch the real home directory, configuration or log file.
package testutil
