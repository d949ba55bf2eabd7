package version

import "fmt"

// Str8tsVersion indicates what version of the solver the binary belongs to
var Str8tsVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of Str8tsVersion and GitCommit
func String() string {
	return fmt.Sprintf("Str8ts Version: %s\n Git commit: %s\n", Str8tsVersion, GitCommit)
}
