package tui

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Label returns the short version string shown in the header.
func (b BuildInfo) Label() string {
	if b.Version == "" {
		return "dev"
	}
	return b.Version
}
