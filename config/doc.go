// Package config loads the lvframe application configuration.
//
// Configuration comes from a single YAML file named by the --config flag or
// the LVFRAME_CONFIG environment variable. Without either, Default applies.
// String values may reference ${VAR} or ${VAR:-default}; credentials are
// usually injected this way rather than written into the file.
//
//	store:
//	  kind: minio
//	  minio:
//	    endpoint: localhost:9000
//	    access_key: ${MINIO_ACCESS_KEY}
//	    secret_key: ${MINIO_SECRET_KEY}
//	    bucket: frames
//	persist:
//	  compression: lz4
//	log:
//	  level: debug
package config
