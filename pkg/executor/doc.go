// Package executor runs external commands for the OS collaborators
// (theme activation and file dialogs). The Runner interface keeps those
// callers testable: production code uses ExecRunner, tests use Fake.
package executor
