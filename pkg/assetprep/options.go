// Package assetprep provides asset preparation utilities: snake-case file
// renaming and sprite sheet descriptor conversion.
package assetprep

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/output"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/parser"
)

// RenameOptions configures RenameDir.
type RenameOptions struct {
	// DryRun reports planned renames without touching the directory.
	DryRun bool
	// Logger receives per-entry debug output. If nil, output is discarded.
	Logger *log.Logger
}

// ConvertOptions configures ConvertSheet.
type ConvertOptions struct {
	// Parse selects the descriptor element and attribute names.
	Parse parser.Options
	// Lua configures the emitted table.
	Lua output.LuaOptions
	// WorkbookPath, if set, also writes a spreadsheet manifest there.
	WorkbookPath string
	// Logger receives progress output. If nil, output is discarded.
	Logger *log.Logger
}

// DefaultConvertOptions returns options for the TextureAtlas layout and a
// "return {...}" chunk.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Parse: parser.DefaultOptions(),
	}
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
