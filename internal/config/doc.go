// Package config provides configuration loading, merging, and validation
// for the discovery binary itself.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The discovery client options are not part of this configuration; they are
// read from the settings files listed in [App.SettingsFiles] by package
// settings.
package config
