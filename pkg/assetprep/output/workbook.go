package output

import (
	"github.com/ukaji3/assetprep-go/pkg/assetprep/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the region manifest workbook.
const (
	RegionsSheet = "Regions"
	AtlasSheet   = "Atlas"
)

// RegionHeader is the header row of the regions sheet.
var RegionHeader = []interface{}{"name", "x", "y", "width", "height"}

// ToWorkbook builds a spreadsheet manifest of atlas: one row per region on
// the Regions sheet and the image path on the Atlas sheet.
// The caller must close the returned file.
func ToWorkbook(atlas *models.Atlas) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", RegionsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(RegionsSheet, "A1", &RegionHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range atlas.Regions {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // row 1 is the header
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{r.Name, r.X, r.Y, r.Width, r.Height}
		if err := f.SetSheetRow(RegionsSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if _, err := f.NewSheet(AtlasSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(AtlasSheet, "A1", ImagePathKey); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(AtlasSheet, "B1", atlas.ImagePath); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteWorkbook saves the region manifest of atlas to path.
func WriteWorkbook(atlas *models.Atlas, path string) error {
	f, err := ToWorkbook(atlas)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}
