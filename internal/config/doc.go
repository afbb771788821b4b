// Package config provides configuration loading and validation for the
// social media API.
//
// Values are layered: built-in defaults, then an optional config.yaml, then
// environment variables with the SOCIAL_ prefix. The merged result is
// validated before it is returned.
package config
