// Package layout turns an invoice snapshot into pages of positioned
// drawing primitives.
//
// This package owns document geometry and pagination:
//   - Greedy word wrapping against an injected width measurer
//   - Fixed vertical region order (title, metadata, parties, item table,
//     totals, notes)
//   - Page breaks with a running vertical cursor and repeated table headers
//   - Overflow clipping with a visible marker when an atomic element cannot
//     fit a whole page
//
// PDF emission is handled separately by the root invoicepdf package, which
// walks the laid-out regions and draws their primitives. This separation
// keeps layout deterministic and free of renderer state: the engine sees
// only strings, box geometry, and the resolved style, never the PDF backend.
//
// All coordinates are in points with the origin at the top-left corner of
// the page, Y growing downward.
package layout
