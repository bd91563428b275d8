package util

import "runtime"

// set through -ldflags "-X my-tweet-reviewer/pkg/util.version=..."
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

type Version struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}
