// Package parser provides sprite sheet descriptor parsing.
package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/assetprep-go/pkg/assetprep/models"
	"golang.org/x/net/html/charset"
)

// Default element and attribute names of a TextureAtlas descriptor.
const (
	DefaultRegionTag = "SubTexture"
	DefaultImageAttr = "imagePath"
)

// Region attribute names, in the order they are read.
const (
	AttrName   = "name"
	AttrX      = "x"
	AttrY      = "y"
	AttrWidth  = "width"
	AttrHeight = "height"
)

// Options configures descriptor parsing.
type Options struct {
	// RegionTag is the element name holding one region (default "SubTexture").
	RegionTag string
	// ImageAttr is the root attribute holding the image path (default "imagePath").
	ImageAttr string
}

// DefaultOptions returns options for the TextureAtlas layout.
func DefaultOptions() Options {
	return Options{
		RegionTag: DefaultRegionTag,
		ImageAttr: DefaultImageAttr,
	}
}

func (o Options) withDefaults() Options {
	if o.RegionTag == "" {
		o.RegionTag = DefaultRegionTag
	}
	if o.ImageAttr == "" {
		o.ImageAttr = DefaultImageAttr
	}
	return o
}

// ParseAtlas reads a sprite sheet descriptor. The root element must carry
// the image attribute; every element named opts.RegionTag at any depth,
// the root included, becomes a region. Later regions with the same name
// replace earlier ones.
func ParseAtlas(r io.Reader, opts Options) (*models.Atlas, error) {
	opts = opts.withDefaults()

	var atlas *models.Atlas
	depth := 0
	closed := false
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		switch t := token.(type) {
		case xml.EndElement:
			depth--
			if depth == 0 {
				closed = true
			}
			continue
		case xml.CharData:
			// Text is only allowed inside the document element.
			if depth == 0 && !isBlank(t) {
				line, _ := decoder.InputPos()
				return nil, fmt.Errorf("%w: line %d: text outside document element", ErrInvalidFormat, line)
			}
			continue
		case xml.StartElement:
			if closed {
				line, _ := decoder.InputPos()
				return nil, fmt.Errorf("%w: line %d: junk after document element <%s>", ErrInvalidFormat, line, t.Name.Local)
			}
			depth++
		default:
			continue
		}

		se := token.(xml.StartElement)
		if atlas == nil {
			imagePath, ok := attrValue(se, opts.ImageAttr)
			if !ok {
				line, _ := decoder.InputPos()
				return nil, &AttributeError{
					Element:   se.Name.Local,
					Attribute: opts.ImageAttr,
					Line:      line,
					Err:       ErrMissingAttribute,
				}
			}
			atlas = models.NewAtlas(imagePath)
		}

		if se.Name.Local == opts.RegionTag {
			line, _ := decoder.InputPos()
			region, err := parseRegion(se, line)
			if err != nil {
				return nil, err
			}
			atlas.Set(region)
		}
	}

	if atlas == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidFormat)
	}
	return atlas, nil
}

// parseRegion reads the name and the four integer attributes of a region.
func parseRegion(se xml.StartElement, line int) (models.Region, error) {
	name, ok := attrValue(se, AttrName)
	if !ok {
		return models.Region{}, &AttributeError{
			Element:   se.Name.Local,
			Attribute: AttrName,
			Line:      line,
			Err:       ErrMissingAttribute,
		}
	}

	region := models.Region{Name: name}
	fields := []struct {
		attr string
		dst  *int
	}{
		{AttrX, &region.X},
		{AttrY, &region.Y},
		{AttrWidth, &region.Width},
		{AttrHeight, &region.Height},
	}

	for _, f := range fields {
		raw, ok := attrValue(se, f.attr)
		if !ok {
			return models.Region{}, &AttributeError{
				Element:   se.Name.Local,
				Region:    name,
				Attribute: f.attr,
				Line:      line,
				Err:       ErrMissingAttribute,
			}
		}
		n, err := parseInt(raw)
		if err != nil {
			return models.Region{}, &AttributeError{
				Element:   se.Name.Local,
				Region:    name,
				Attribute: f.attr,
				Value:     raw,
				Line:      line,
				Err:       fmt.Errorf("%w: %v", ErrInvalidAttribute, err),
			}
		}
		*f.dst = n
	}

	return region, nil
}

// parseInt parses a base-10 integer, tolerating surrounding whitespace.
func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// isBlank reports whether text holds only whitespace and byte order marks.
func isBlank(text []byte) bool {
	return len(bytes.Trim(text, " \t\r\n\ufeff")) == 0
}

func attrValue(se xml.StartElement, name string) (string, bool) {
	for _, attr := range se.Attr {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
