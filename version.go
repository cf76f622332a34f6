// Package mdtoolbar is a markdown formatting toolbar for terminal editors.
//
// The formatting engine lives in package format, upload placeholders in
// upload, paste embed detection in paste and the Bubble Tea component in
// editor.
package mdtoolbar

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version reports the release version without a leading "v".
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// Tag is Version as a git tag.
func Tag() string { return "v" + Version() }

// ValidSemver reports whether v is a SemVer 2.0.0 string.
func ValidSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
