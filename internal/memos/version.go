package memos

import (
	"fmt"

	"golang.org/x/mod/semver"
)

type Version string

// SupportedVersion is the Memos release line the exporter understands:
// the v0 API with integer ids and unix timestamps.
const SupportedVersion Version = "v0.18.0"

func NewVersion(v string) (Version, error) {
	if len(v) > 0 && v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid semantic version: %s", v)
	}
	return Version(v), nil
}

func (v Version) String() string {
	s := string(v)
	if len(s) > 0 && s[0] == 'v' {
		return s[1:]
	}
	return s
}

func (v Version) IsCompatible() bool {
	return semver.Major(string(v)) == semver.Major(string(SupportedVersion))
}
