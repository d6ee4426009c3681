package assetprep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/assetprep-go/pkg/assetprep/models"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/output"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/parser"
	"github.com/xuri/excelize/v2"
)

// ParseSheetFile parses the sprite sheet descriptor at path.
func ParseSheetFile(path string, opts parser.Options) (*models.Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	atlas, err := parser.ParseAtlas(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return atlas, nil
}

// ConvertSheet converts the descriptor at inPath into a Lua table written
// to outPath, plus the optional workbook. On error no Lua file is left
// behind.
func ConvertSheet(inPath, outPath string, opts ConvertOptions) (*models.Atlas, error) {
	logger := loggerOrDiscard(opts.Logger)

	if err := opts.Lua.Validate(); err != nil {
		return nil, err
	}

	atlas, err := ParseSheetFile(inPath, opts.Parse)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed sheet", "path", inPath, "image", atlas.ImagePath, "regions", atlas.Len())

	var wb *excelize.File
	if opts.WorkbookPath != "" {
		wb, err = output.ToWorkbook(atlas)
		if err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
		defer wb.Close()
	}

	if err := os.WriteFile(outPath, output.ToLua(atlas, opts.Lua), 0644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debug("wrote lua table", "path", outPath)

	if wb != nil {
		if err := wb.SaveAs(opts.WorkbookPath); err != nil {
			os.Remove(outPath)
			return nil, fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Debug("wrote workbook", "path", opts.WorkbookPath)
	}

	return atlas, nil
}
