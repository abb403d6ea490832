// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env override file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The resulting
// [StructuredConfig] is built once per process and passed explicitly to the
// components that need it.
package config
