// Package testutil provides helpers for tests that build containers and
// run components.
//
//	func TestScreen(t *testing.T) {
//	    root := testutil.Container(t, di.NameSingleton, sample.RootModules())
//	    rec := testutil.NewRecorder()
//	    activity := testutil.Child(t, root, di.NameActivity, sample.ActivityModules(),
//	        di.WithObserver(rec))
//	    ...
//	}
//
// Everything built through testutil is released with t.Cleanup.
package testutil
