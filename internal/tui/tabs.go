package tui

import "fmt"

// Tab identifies a top-level screen.
type Tab int

const (
	TabProjects Tab = iota
	TabContact
)

var tabNames = []string{"projects", "contact"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "unknown"
}

// Title is the label rendered in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabProjects:
		return "Projects"
	case TabContact:
		return "Contact"
	default:
		return ""
	}
}

// ParseTab parses a tab name as accepted by the --tab flag.
func ParseTab(s string) (Tab, error) {
	for i, name := range tabNames {
		if s == name {
			return Tab(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q (want one of %v)", s, tabNames)
}
