// Package config manages user-level settings stored at ~/.apiscaffold/config.yaml.
// Every key can also be set through an APISCAFFOLD_-prefixed environment variable:
// the default base URL offered by the prompt, the layout to generate, whether to
// install dependencies, and the diagnostic log level.
package config
