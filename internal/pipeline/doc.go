// Package pipeline drives a rename run: it discovers album folders under
// the library root, renames each folder and then every supported file
// inside it, and reports a summary.
//
// Discovery follows the configured layout:
//
//	recursive: any "YYYY - Title" folder at any depth below the root
//	hierarchy: only <root>/<genre>/<band>/<album>
//
// Albums are processed deepest first so renaming a nested album never
// invalidates a path that is still pending. A failure on one item is
// logged and counted; the run always continues with the next item.
package pipeline
