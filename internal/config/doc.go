// Package config provides configuration loading, merging, and validation for
// the photo-keeper client engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill fields earlier sources left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetClientConfig].
package config
