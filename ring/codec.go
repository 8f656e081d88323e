// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Codec serializes and deserializes values of type T into the ring's
// byte stream. RecordSize returning 0 means variable-length records.
// Init stores the record size it is given in the ring header, but
// neither Init nor Attach compares it with a codec's RecordSize.
type Codec[T any] interface {
	// RecordSize returns the fixed encoded size in bytes, or 0 for
	// variable-length records.
	RecordSize() uint32

	// Serialize returns the encoded bytes for value. scratch may be
	// reused as backing storage to serialize in place; implementations
	// that don't need it may ignore it and return a different slice.
	Serialize(value T, scratch []byte) (encoded []byte)

	// Deserialize decodes one record from the front of buf. It reports
	// whether decoding succeeded and how many bytes were consumed; a
	// false ok with consumed > 0 indicates a malformed record.
	Deserialize(buf []byte) (value T, ok bool, consumed uint32)
}

// Write serializes value with codec and writes it to the ring. Returns
// false if the ring does not currently have room.
func Write[T any](r *Ring, codec Codec[T], value T) bool {
	if n := codec.RecordSize(); n != 0 {
		dst := r.AcquireWrite(n)
		if dst == nil {
			return false
		}
		encoded := codec.Serialize(value, dst)
		copy(dst, encoded)
		r.CommitWrite(n)
		return true
	}

	// Variable length: serialize first (codec decides its own framing,
	// e.g. a length prefix), then reserve exactly that many bytes.
	encoded := codec.Serialize(value, nil)
	dst := r.AcquireWrite(uint32(len(encoded)))
	if dst == nil {
		return false
	}
	copy(dst, encoded)
	r.CommitWrite(uint32(len(encoded)))
	return true
}

// Read decodes one record from the ring using codec. Returns false if
// the ring is empty or the record was malformed.
func Read[T any](r *Ring, codec Codec[T]) (T, bool) {
	var zero T
	buf := r.AcquireReadMax()
	if len(buf) == 0 {
		return zero, false
	}
	value, ok, consumed := codec.Deserialize(buf)
	if consumed > 0 {
		r.CommitRead(consumed)
	}
	if !ok {
		return zero, false
	}
	return value, true
}

// ReadBatch decodes up to n records from one acquired span, stopping
// early if the span is exhausted or a record fails to decode. It
// returns the decoded values; a decode failure stops the batch without
// being reported as an error, matching the original circular buffer's
// batch-drain behavior.
func ReadBatch[T any](r *Ring, codec Codec[T], n int) []T {
	buf := r.AcquireReadMax()
	if len(buf) == 0 {
		return nil
	}

	out := make([]T, 0, n)
	pos := uint32(0)
	for len(out) < n && pos < uint32(len(buf)) {
		value, ok, consumed := codec.Deserialize(buf[pos:])
		if consumed == 0 {
			break
		}
		pos += consumed
		if !ok {
			break
		}
		out = append(out, value)
	}
	if pos > 0 {
		r.CommitRead(pos)
	}
	return out
}
