package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/counter/pkg/errors"
	"github.com/go-drift/counter/pkg/layout"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatHTML, FormatJSON, FormatPNG}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (use text, html, json or png)", s)
}

// Write renders root to w in the given format. Failures are returned as
// render errors.
func Write(w io.Writer, format Format, root layout.RenderObject) error {
	var err error
	switch format {
	case FormatText:
		_, err = io.WriteString(w, Text(root)+"\n")
	case FormatHTML:
		err = HTML(w, root)
	case FormatJSON:
		err = JSON(w, root)
	case FormatPNG:
		err = PNG(w, root)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return errors.Wrap("render.Write", errors.KindRender, err)
	}
	return nil
}
