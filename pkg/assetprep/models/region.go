// Package models defines data structures for sprite sheets and file renames.
package models

// Region represents a named rectangle inside a sprite sheet image.
type Region struct {
	// Name is the region identifier, unique within an atlas.
	Name string `json:"name"`
	// X is the left offset in pixels.
	X int `json:"x"`
	// Y is the top offset in pixels.
	Y int `json:"y"`
	// Width is the region width in pixels.
	Width int `json:"width"`
	// Height is the region height in pixels.
	Height int `json:"height"`
}
