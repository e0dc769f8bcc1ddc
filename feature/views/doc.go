// Package views declares the application's route table and builds its view
// units.
//
// | Path   | Name  | Loader |
// |--------|-------|--------|
// | /      | Game  | eager  |
// | /debug | Debug | lazy   |
//
// The game view is parsed from the embedded bundle at startup. The debug view
// is an independently retrievable chunk, fetched from a chunk.Source on the
// first visit and cached by the navigator afterwards.
//
// Views are html/template fragments rendered with a Data value, so the debug
// view can show live route state while its template is loaded only once.
package views
