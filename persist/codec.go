// SPDX-License-Identifier: MIT

package persist

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/matrix"
	"github.com/zeebo/blake3"
)

const (
	// FormatVersion is the envelope version written by Encode.
	FormatVersion = 1

	// MaxPayloadSize caps the uncompressed payload accepted by Decode.
	MaxPayloadSize = 1 << 30

	headerSize = 44
)

var magic = [4]byte{'L', 'V', 'F', 'R'}

// encMode uses core deterministic encoding so equal frames encode to equal
// bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("persist: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		MaxArrayElements: 1 << 27,
	}.DecMode()
	if err != nil {
		panic("persist: CBOR decoder initialization failed: " + err.Error())
	}
}

// record is the CBOR payload. Integer keys keep it compact.
type record[L cmp.Ordered] struct {
	Rows      int       `cbor:"1,keyasint"`
	Cols      int       `cbor:"2,keyasint"`
	Indptr    []int     `cbor:"3,keyasint"`
	Indices   []int     `cbor:"4,keyasint"`
	Data      []float64 `cbor:"5,keyasint"`
	RowLabels []L       `cbor:"6,keyasint"`
	ColLabels []L       `cbor:"7,keyasint"`
	Reducer   string    `cbor:"8,keyasint,omitempty"`
}

// Encode serializes f into a blob.
// Options: WithCompression, WithLogger.
// Errors: matrix.ErrNilMatrix for a nil frame, ErrTooLarge.
func Encode[L cmp.Ordered](f *frame.Frame[L], opts ...Option) ([]byte, error) {
	const tag = "Encode"
	if f == nil {
		return nil, persistErrorf(tag, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	indptr, indices, data := f.Matrix().Raw()
	rec := record[L]{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		Indptr:    indptr,
		Indices:   indices,
		Data:      data,
		RowLabels: f.RowLabels(),
		ColLabels: f.ColLabels(),
	}
	if f.HasReducer() {
		if name, ok := frame.ReducerName(f.Reducer()); ok {
			rec.Reducer = name
		} else {
			o.logger.Debug("unnamed reducer not persisted")
		}
	}

	payload, err := encMode.Marshal(rec)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}
	if len(payload) > MaxPayloadSize {
		return nil, persistErrorf(fmt.Sprintf("%s: %d bytes", tag, len(payload)), ErrTooLarge)
	}
	body, used, err := compress(payload, o.compression)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}

	var buf bytes.Buffer
	buf.Grow(headerSize + len(body))
	buf.Write(magic[:])
	buf.WriteByte(FormatVersion)
	buf.WriteByte(byte(used))
	buf.Write([]byte{0, 0})
	sum := blake3.Sum256(payload)
	buf.Write(sum[:])
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(payload))))
	buf.Write(body)

	return buf.Bytes(), nil
}

// Decode parses a blob produced by Encode.
// Options: WithReducers.
// Errors: ErrTruncated, ErrBadMagic, ErrUnsupportedVersion,
// ErrUnknownCompression, ErrTooLarge, ErrChecksum, matrix.ErrCorrupt,
// frame.ErrLabelShape, frame.ErrUnknownReducer.
func Decode[L cmp.Ordered](blob []byte, opts ...Option) (*frame.Frame[L], error) {
	const tag = "Decode"
	if len(blob) < headerSize {
		return nil, persistErrorf(fmt.Sprintf("%s: %d bytes", tag, len(blob)), ErrTruncated)
	}
	if !bytes.Equal(blob[:4], magic[:]) {
		return nil, persistErrorf(tag, ErrBadMagic)
	}
	if v := blob[4]; v != FormatVersion {
		return nil, persistErrorf(fmt.Sprintf("%s: version %d", tag, v), ErrUnsupportedVersion)
	}
	c := Compression(blob[5])
	if !c.Valid() {
		return nil, persistErrorf(fmt.Sprintf("%s: compression %d", tag, blob[5]), ErrUnknownCompression)
	}
	var want [32]byte
	copy(want[:], blob[8:40])
	size := binary.LittleEndian.Uint32(blob[40:44])
	if size > MaxPayloadSize {
		return nil, persistErrorf(fmt.Sprintf("%s: %d bytes", tag, size), ErrTooLarge)
	}

	payload, err := decompress(blob[headerSize:], c, int(size))
	if err != nil {
		return nil, persistErrorf(fmt.Sprintf("%s: %s payload", tag, c), err)
	}
	if blake3.Sum256(payload) != want {
		return nil, persistErrorf(tag, ErrChecksum)
	}

	var rec record[L]
	if err = decMode.Unmarshal(payload, &rec); err != nil {
		return nil, persistErrorf(tag, err)
	}
	m, err := matrix.FromRaw(rec.Rows, rec.Cols, rec.Indptr, rec.Indices, rec.Data)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}

	o := gatherOptions(opts...)
	var fopts []frame.Option
	if rec.Reducer != "" {
		r, err := o.reducer(rec.Reducer)
		if err != nil {
			return nil, persistErrorf(tag, err)
		}
		fopts = append(fopts, frame.WithReducer(r))
	}
	f, err := frame.New(m, rec.RowLabels, rec.ColLabels, fopts...)
	if err != nil {
		return nil, persistErrorf(tag, err)
	}

	return f, nil
}
