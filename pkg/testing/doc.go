// Package testing provides a widget testing framework for counter widgets.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestCounterApp(t *testing.T) {
//	    tester := countertest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(app.CounterApp{Start: 5})
//
//	    // Activate a control
//	    tester.Tap(countertest.ByLabel("increment"))
//	    tester.Pump()
//
//	    // Assert state
//	    if !tester.Find(countertest.ByText("count: 6")).Exists() {
//	        t.Error("expected 'count: 6' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare render tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	COUNTER_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import countertest "github.com/go-drift/counter/pkg/testing"
package testing
