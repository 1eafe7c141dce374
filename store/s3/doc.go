// Package s3 stores persisted frames in Amazon S3 through aws-sdk-go-v2.
//
// Store talks to a narrow Client interface so tests can substitute a mock;
// *s3.Client satisfies it.
package s3
