package testing

import (
	"fmt"

	"github.com/go-drift/counter/pkg/layout"
)

// Tap activates the first element matched by finder. The resulting rebuild
// is not run until the next Pump.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}

	ro := result.RenderObject()
	if ro == nil {
		return fmt.Errorf("Tap: element has no render object: %s", finder.Description())
	}
	tappable, ok := ro.(layout.Tappable)
	if !ok {
		return fmt.Errorf("Tap: %T is not tappable: %s", ro, finder.Description())
	}
	if !tappable.Tap() {
		return fmt.Errorf("Tap: tap was ignored: %s", finder.Description())
	}
	return nil
}
