// Package git provides git operations via shell commands.
//
// All operations call the git CLI directly rather than using Go git
// libraries. This ensures compatibility with user configurations
// (SSH keys, credential helpers, aliases) and lets the delegated clone
// report progress on the user's terminal exactly as git would.
package git
