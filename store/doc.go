// Package store provides named blob sinks for persisted frames.
//
// A Store maps slash-separated names to immutable byte blobs:
//
//   - MemoryStore: in-process map, for tests and short-lived pipelines.
//   - LocalStore: one file per blob under a root directory; writes are atomic
//     (temp file + rename).
//   - store/minio and store/s3: object storage backends.
//
// Missing blobs are reported with an error matching ErrNotFound (os.ErrNotExist).
package store
