package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables, set with -ldflags "-X".
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the deployed build. version comes from configuration.
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	info := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
