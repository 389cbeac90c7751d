// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and STUDYAID_ environment
// variables. It provides type-safe access to the settings needed by the
// generation client, logging and rendering while keeping configuration
// details separate from session logic.
package config
