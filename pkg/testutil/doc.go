// Package testutil provides helpers shared by the braces test suites.
//
// Tests that load configuration or set up logging touch the XDG base
// directories and BRACES_ environment variables. IsolateXDG points all of
// them at per-test temporary directories so results never depend on the
// machine running the tests.
package testutil
