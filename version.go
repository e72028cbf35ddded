package postman

import (
	"fmt"
	"io"
	"runtime"
)

// Populated during build via -ldflags, don't touch!
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "undefined"
)

// FullVersion describes the running postman binary.
type FullVersion struct {
	Version   string
	GitRev    string
	GitBranch string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

// GetVersion returns the build information of the binary.
func GetVersion() FullVersion {
	return FullVersion{
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion writes the build information into w.
func PrintVersion(w io.Writer) {
	fmt.Fprint(w, GetVersion().String())
}

// Short returns "<version>-<git revision>", used as user agent and in metrics labels.
func (f FullVersion) Short() string {
	if f.GitRev == "" || f.GitRev == "undefined" {
		return f.Version
	}
	rev := f.GitRev
	if len(rev) > 8 { //nolint:mnd
		rev = rev[:8]
	}
	return f.Version + "-" + rev
}

func (f FullVersion) String() string {
	return fmt.Sprintf("Postman\n"+
		"Version:      %s\n"+
		"Git revision: %s\n"+
		"Git branch:   %s\n"+
		"Go version:   %s\n"+
		"Built:        %s\n"+
		"OS/Arch:      %s/%s\n",
		f.Version, f.GitRev, f.GitBranch,
		f.GoVersion, f.BuildDate, f.OS, f.Arch)
}
