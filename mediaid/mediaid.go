// Package mediaid extracts TMDB identifiers from media file paths.
//
// Libraries organized for Jellyfin commonly tag movie folders and files
// with a bracket suffix such as "Heat (1995) [tmdbid-949]". This package
// pulls the numeric ID back out of such names. It is a pure string
// operation with no I/O, so callers can use it without any network or
// filesystem setup.
package mediaid

import "regexp"

// tmdbIDPattern matches the bracket tag Jellyfin-style libraries embed in
// paths, e.g. "[tmdbid-603]". The capture group holds the digits.
var tmdbIDPattern = regexp.MustCompile(`\[tmdbid-(\d+)\]`)

// FromPath extracts a TMDB ID from a path or bare filename. The match is
// substring-based, so the tag may appear anywhere in the string. The second
// return value reports whether a tag was found; absence is a normal outcome,
// not an error.
func FromPath(path string) (string, bool) {
	m := tmdbIDPattern.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}
