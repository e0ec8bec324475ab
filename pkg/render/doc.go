// Package render turns a render tree into output: styled terminal text,
// HTML, JSON snapshots or PNG images.
//
//	err := render.Write(os.Stdout, render.FormatText, session.RenderRoot())
package render
