// Package config manages user-level settings stored at ~/.devkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default package manager preference used by new projects.
package config
