package widgets

import (
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/errors"
)

// ErrorWidget renders a failed build as a single line of text. Install it
// with core.SetErrorWidgetBuilder.
func ErrorWidget(err *errors.BuildError) core.Widget {
	return Text{Content: "build failed: " + err.Error()}
}
