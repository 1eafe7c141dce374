// Package minio stores persisted frames in MinIO or any S3-compatible
// endpoint reachable through minio-go.
package minio
