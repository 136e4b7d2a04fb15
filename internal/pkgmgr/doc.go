// Package pkgmgr detects the JavaScript package manager a project uses and runs
// its install command for the scaffolded dependencies. Installation is best
// effort: failures come back as *InstallWarning carrying the command the user
// can run by hand.
package pkgmgr
