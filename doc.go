// Package lvframe is a toolkit for labeled sparse matrices: frames whose
// rows and columns carry labels, with label-aware selection, summaries and
// merges on top of a compressed-sparse-row engine.
//
// What you get:
//
//   - matrix/  canonical CSR engine: build, slice, stack, add, reduce
//   - index/   label-position index and roaring-backed position sets
//   - frame/   the labeled container, reducers, summaries and masks, merge
//     policies (force_append, keep, replace, sum, mean)
//   - table/   dense export as aligned text or CSV
//   - builder/ deterministic random frames for tests, benchmarks and demos
//   - persist/ checksummed, compressed CBOR blobs (Save, Load, SaveAll)
//   - store/   blob sinks: memory, local files, MinIO, S3
//   - config/  YAML application configuration
//   - cmd/lvframe  command-line front end
//
// Quick start:
//
//	m, _ := matrix.FromDense([][]float64{{1, 0}, {0, 2}})
//	f, _ := frame.New(m, []string{"r1", "r2"}, []string{"c1", "c2"},
//		frame.WithReducer(frame.L1NormColumns))
//	s, _ := f.Summary()
//	heavy, _ := s.GreaterThan(1).SubFrame()
//	_, _ = persist.Save(ctx, store.NewMemoryStore(), "heavy", heavy, true)
//
// Frames are immutable and safe to share between goroutines; every
// operation returns a new value and reports failures through sentinel
// errors matched with errors.Is.
package lvframe
