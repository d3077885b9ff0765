// Package version reports build metadata for the binaries.
//
// Release builds stamp it with
//
//	-ldflags "-X meanin/internal/core/version.version=v0.1.0 -X meanin/internal/core/version.commit=abcd -X meanin/internal/core/version.date=2026-10-01"
package version

import "fmt"

var (
	service = "meanin-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is what /version and the ClickHouse client info report
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build information
func Info() BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// As returns Info relabelled for another binary built from the same tree
func As(svc string) BuildInfo {
	b := Info()
	b.Service = svc
	return b
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}
