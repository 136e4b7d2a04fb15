// Package scaffold is the filesystem planner behind "apiscaffold init". It walks a
// registry layout, creates or reuses each folder, writes each file, and asks a
// Resolver whenever a target already exists. Nothing under a skipped folder is
// ever written.
package scaffold
