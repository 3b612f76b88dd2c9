package introduced

import (
	"fmt"
	"strings"
)

// FormatOutcome renders one outcome as its user-visible line(s).
// Continuation lines are indented to align with the message text of the
// header line.
func FormatOutcome(o Outcome) string {
	header := "## " + o.Name + " -- "
	pad := strings.Repeat(" ", len(header))

	switch o.Kind {
	case VersionFound:
		line := header + o.Version
		if o.Rename != nil {
			line += "\n" + pad + renameLine(o)
		}
		return line

	case NoVersion:
		return header + "No release information found on webdocs page"

	case LocalOnly:
		return header + "Exists, but no online documentation found" +
			"\n" + pad + fmt.Sprintf("Function may have been removed between %s and %s",
			o.CurrentRelease, o.LatestRelease)

	case NotFound:
		return header + "Does not exist in this installation; no online documentation found" +
			"\n" + pad + "If this is part of MATLAB, it may have been removed before " + o.CurrentRelease

	case ConnectionError:
		return "Connection error.  Direct lookups and web searches all failed."
	}
	return ""
}

// renameLine phrases the rename annotation. Without a known canonical
// name the target is left unsaid: naming the guessed display name could
// claim a function was renamed to itself.
func renameLine(o Outcome) string {
	if o.Canonical != "" {
		return fmt.Sprintf("%s was renamed to %s in %s", o.Rename.OldName, o.Canonical, o.Rename.Version)
	}
	return fmt.Sprintf("%s was renamed in %s", o.Rename.OldName, o.Rename.Version)
}
