package introduced

import "context"

// Installation introspects the locally installed MATLAB.
type Installation interface {
	// Which reports whether name resolves to a file under the
	// installation's toolbox tree and, if so, its installation-relative
	// path.
	Which(name string) (path string, ok bool)

	// Release returns the release token of the running installation,
	// e.g. "R2023b".
	Release() string
}

// ReleaseSource reports the newest release MathWorks has shipped.
// The lookup is remote and may fail; callers substitute a placeholder
// label when it does.
type ReleaseSource interface {
	Latest(ctx context.Context) (string, error)
}
