// Package compileinfo reports which commit a gpsvis binary was built from, so
// that a data.json can be traced back to the code that produced it.
package compileinfo

import (
	"fmt"
	"os"
	"path"
	"runtime/debug"
)

type CompileInfo struct {
	Tool       string
	Module     string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Commit == "" {
		return fmt.Sprintf("This %s binary was built with %s from an unknown commit.", c.Tool, c.GoVersion)
	}

	dirty := ""
	if c.Modified {
		dirty = " (with uncommitted changes)"
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %s%s, committed %s.", c.Tool, c.GoVersion, c.Commit, dirty, c.CommitTime)
}

func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Module = z.Main.Path
	out.Tool = path.Base(z.Path)
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
