// Package shell is the host side of client navigation.
//
// It drives the navigator from the request path: the base path is stripped,
// the remainder is resolved exactly against the route table and the route is
// activated, fetching its chunk on first use.
//
// # HTTP Endpoints
//
//   - GET <base><path> : renders the full HTML document for the view. The
//     embedded script intercepts links marked data-nav and switches views
//     with history.pushState, so the location changes without a reload.
//   - GET <base>_view<path> : returns the rendered view as JSON
//     ({name, title, path, body}) for the script above.
//
// Unknown paths answer 404 with a link back to the game view. A failed chunk
// fetch answers 502; the next request retries the fetch.
package shell
