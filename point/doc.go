// Package point formats and serializes 3D coordinate values.
//
// The package does not implement geometry: coordinate math belongs to
// whatever library produced the value. Any type exposing numeric x/y/z
// accessors satisfies the Coords interface and can be passed to the
// formatting functions:
//
//   - Display: a two-decimal display string, "(1.00, 2.00, 3.00)"
//   - Dict: a mapping of coordinate names to integer-rounded values
//   - JSON, YAML: the Dict mapping rendered as a document
//
// The concrete Point type wraps a coordinate triple together with an
// opaque instance identifier. The identifier appears in the debug
// representation (GoString) so that two points with identical coordinates
// remain distinguishable in logs.
package point
