// Package naming normalizes asset file names to snake case.
package naming

import (
	"regexp"
	"strings"
)

// wordPattern matches a maximal run of ASCII letters and digits.
var wordPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// SplitExt splits name into a base and an extension. The extension starts
// at the last dot, but only if a non-dot character precedes that dot, so
// ".bashrc" and "..foo" have no extension while "foo." has ".".
func SplitExt(name string) (base, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}

// Words returns the ASCII alphanumeric runs of s in order.
// Every other character, including non-ASCII letters, separates words.
func Words(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// Normalize converts a file name to snake case. The base name is reduced to
// its lower-cased alphanumeric runs joined by underscores; the extension is
// kept byte for byte.
//
//	"My Song (Remix).MP3" -> "my_song_remix.MP3"
//
// A base with no alphanumeric runs yields the bare extension.
func Normalize(name string) string {
	base, ext := SplitExt(name)
	words := Words(base)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_") + ext
}

// IsNormalized reports whether Normalize leaves name unchanged.
func IsNormalized(name string) bool {
	return Normalize(name) == name
}
