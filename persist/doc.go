// Package persist serializes frames into self-describing blobs and writes
// them to a store.Store.
//
// Blob layout (little-endian):
//
//	offset size field
//	0      4    magic "LVFR"
//	4      1    format version (1)
//	5      1    compression (0 none, 1 lz4, 2 zstd)
//	6      2    reserved, zero
//	8      32   BLAKE3-256 digest of the uncompressed payload
//	40     4    uncompressed payload size
//	44     ...  payload, compressed as declared
//
// The payload is a CBOR record in core deterministic encoding holding the
// raw CSR arrays, both label vectors and the name of the default reducer.
// Encoding the same frame twice yields identical bytes.
//
// Only named reducers (frame.NamedReducer) are persisted. Load resolves the
// name against the built-ins and any reducers passed with WithReducers.
//
// Save optionally prefixes blob names with DumpPrefix so dumps can be
// listed apart from other blobs in a shared store.
package persist
