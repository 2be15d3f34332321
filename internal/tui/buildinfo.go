package tui

// BuildInfo carries the release metadata shown next to the banner.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) label() string {
	if b.Version == "" || b.Version == "dev" {
		return "dev"
	}
	return "v" + b.Version
}
