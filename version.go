package whisperaudio

import "fmt"

// Version is the semantic version of the whisperaudio library.
const Version = "1.0.0"

// VersionInfo returns a human-readable version string for the library,
// including a marker that the recognition layer is still the placeholder
// implementation.
func VersionInfo() string {
	return fmt.Sprintf("whisperaudio v%s - placeholder recognition layer", Version)
}
