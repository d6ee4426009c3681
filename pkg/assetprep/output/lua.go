// Package output serializes sprite sheet atlases.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/assetprep-go/pkg/assetprep/models"
)

// ImagePathKey is the table key holding the atlas image path.
const ImagePathKey = "imagePath"

// ErrInvalidLuaOptions indicates options that would produce an invalid chunk.
var ErrInvalidLuaOptions = errors.New("invalid lua options")

// LuaOptions configures Lua table output. ToLua does not check them;
// call Validate first when they come from user input.
type LuaOptions struct {
	// Global, when set, emits "Global = {...}" instead of "return {...}".
	// It must be a Lua identifier.
	Global string
	// Indent is the per-field indentation (default tab). Whitespace only.
	Indent string
}

// Validate checks that o yields a loadable Lua chunk.
func (o LuaOptions) Validate() error {
	if o.Global != "" && !IsLuaIdentifier(o.Global) {
		return fmt.Errorf("%w: global %q is not a Lua identifier", ErrInvalidLuaOptions, o.Global)
	}
	if strings.Trim(o.Indent, " \t") != "" {
		return fmt.Errorf("%w: indent %q must be spaces or tabs", ErrInvalidLuaOptions, o.Indent)
	}
	return nil
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// IsLuaIdentifier reports whether s can be written as a bare Lua name.
func IsLuaIdentifier(s string) bool {
	return identPattern.MatchString(s) && !luaKeywords[s]
}

// ToLua renders atlas as a Lua chunk holding a single table:
//
//	return {
//		imagePath = "atlas.png",
//		tile_01 = { x = 0, y = 0, width = 32, height = 32 },
//	}
//
// Regions share the table with the image path, so a region named
// "imagePath" takes the image path's slot.
func ToLua(atlas *models.Atlas, opts LuaOptions) []byte {
	indent := opts.Indent
	if indent == "" {
		indent = "\t"
	}

	var buf bytes.Buffer
	if opts.Global != "" {
		buf.WriteString(opts.Global)
		buf.WriteString(" = {\n")
	} else {
		buf.WriteString("return {\n")
	}

	if r, ok := atlas.Region(ImagePathKey); ok {
		writeRegion(&buf, indent, r)
	} else {
		buf.WriteString(indent)
		buf.WriteString(luaKey(ImagePathKey))
		buf.WriteString(" = ")
		buf.WriteString(LuaString(atlas.ImagePath))
		buf.WriteString(",\n")
	}

	for _, r := range atlas.Regions {
		if r.Name == ImagePathKey {
			continue
		}
		writeRegion(&buf, indent, r)
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func writeRegion(buf *bytes.Buffer, indent string, r models.Region) {
	fmt.Fprintf(buf, "%s%s = { x = %d, y = %d, width = %d, height = %d },\n",
		indent, luaKey(r.Name), r.X, r.Y, r.Width, r.Height)
}

func luaKey(s string) string {
	if IsLuaIdentifier(s) {
		return s
	}
	return "[" + LuaString(s) + "]"
}

// LuaString quotes s as a double-quoted Lua string literal. Control bytes
// are written as three-digit decimal escapes; all other bytes are copied.
func LuaString(s string) string {
	var buf bytes.Buffer
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&buf, "\\%03d", c)
				continue
			}
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
