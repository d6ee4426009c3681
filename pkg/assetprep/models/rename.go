package models

// Rename represents one file rename inside a directory.
type Rename struct {
	// Dir is the directory holding the file.
	Dir string `json:"dir"`
	// From is the original base name.
	From string `json:"from"`
	// To is the normalized base name.
	To string `json:"to"`
}

// RenameReport summarizes a normalization pass over a directory.
type RenameReport struct {
	// Dir is the directory that was scanned.
	Dir string `json:"dir"`
	// DryRun is true when no file was actually renamed.
	DryRun bool `json:"dry_run"`
	// Renamed lists renames in the order they were applied.
	Renamed []Rename `json:"renamed,omitempty"`
	// Skipped lists entries left untouched (directories and names that
	// are already normalized).
	Skipped []string `json:"skipped,omitempty"`
}
