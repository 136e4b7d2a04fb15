// Package cli defines the Cobra command tree for the apiscaffold CLI. Each file
// in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for the scaffolding
// itself and only handle I/O, configuration and user interaction.
package cli
