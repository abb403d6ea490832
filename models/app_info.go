// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is the fixed application metadata served at the API root.
type AppInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Version     string       `json:"version"`
	Build       AppBuildInfo `json:"build"`
}

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// the version command and the API root for release traceability.
type AppBuildInfo struct {
	BuildVersion string `json:"version"`
	BuildDate    string `json:"date"`
	BuildCommit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		BuildVersion: buildVersion,
		BuildDate:    buildDate,
		BuildCommit:  buildCommit,
	}
}

// HealthStatus is the body of a passing health check.
type HealthStatus struct {
	Status string `json:"status"`
}
