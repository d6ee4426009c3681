package models

// Atlas represents a sprite sheet descriptor: one image and its regions.
type Atlas struct {
	// ImagePath is the image file referenced by the descriptor root.
	ImagePath string `json:"image_path"`
	// Regions holds regions in order of first appearance.
	Regions []Region `json:"regions"`

	index map[string]int
}

// NewAtlas creates an empty atlas for imagePath.
func NewAtlas(imagePath string) *Atlas {
	return &Atlas{
		ImagePath: imagePath,
		index:     make(map[string]int),
	}
}

// Set adds r to the atlas. A region with the same name replaces the
// earlier values but keeps the earlier position.
func (a *Atlas) Set(r Region) {
	if a.index == nil {
		a.reindex()
	}
	if i, ok := a.index[r.Name]; ok {
		a.Regions[i] = r
		return
	}
	a.index[r.Name] = len(a.Regions)
	a.Regions = append(a.Regions, r)
}

// Region returns the region called name.
func (a *Atlas) Region(name string) (Region, bool) {
	if a.index == nil {
		a.reindex()
	}
	i, ok := a.index[name]
	if !ok {
		return Region{}, false
	}
	return a.Regions[i], true
}

// Len returns the number of distinct regions.
func (a *Atlas) Len() int {
	return len(a.Regions)
}

// reindex rebuilds the name index for atlases built as struct literals.
func (a *Atlas) reindex() {
	a.index = make(map[string]int, len(a.Regions))
	for i, r := range a.Regions {
		a.index[r.Name] = i
	}
}
