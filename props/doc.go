// Package props marshals typed values through the driver's untyped property
// primitives.
//
// Each property ID constant has a Go type naming its wire shape (U32,
// String, RefArray, ...), so reading a string property with GetU32 does not
// compile. Fixed width values take one native call. Variable length values
// (strings, string arrays, ref and scalar arrays) use SizedFetch: a size
// query followed by one fetch of exactly that many bytes.
//
// All values are little endian. Booleans travel as a single byte.
package props
