// Package version holds the module's release version string. The
// teacher generates this file at build time via its magefile generator;
// here it's simply committed, since this module ships as a library plus
// one CLI rather than a multi-target release pipeline.
package version

// Version is the current release version.
const Version = "0.1.0"
