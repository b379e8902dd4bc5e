package version

import (
	"fmt"
	"runtime"
)

// Populated by the linker, e.g.
// -ldflags "-X github.com/grovetools/seshconnect/version.Version=v0.3.0".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info holds all the versioning information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns a struct populated with the version information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the info as aligned "label: value" lines.
func (i Info) String() string {
	return fmt.Sprintf(
		"Version:    %s\nCommit:     %s\nBuilt:      %s\nGo:         %s\nPlatform:   %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform,
	)
}
