// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// slot is a storage cell holding at most one live element.
//
// A vacant slot holds the zero value of T. The ring core alone decides which
// slots are live: a slot performs no bounds or liveness checking of its own.
// take and clear re-zero the cell so that any references held by the departing
// element are released to the garbage collector.
type slot[T any] struct {
	val T
}

// put copies *v into the cell.
func (s *slot[T]) put(v *T) {
	s.val = *v
}

// moveIn copies *v into the cell and zeroes the source.
// The caller must have already confirmed the slot is vacant; the source is
// only consumed on a guaranteed-successful transfer.
func (s *slot[T]) moveIn(v *T) {
	s.val = *v
	var zero T
	*v = zero
}

// emplace constructs the element in place by running construct against the
// cell. On error the cell is cleared back to vacant and the error returned;
// the caller must not publish the slot.
func (s *slot[T]) emplace(construct func(*T) error) error {
	if err := construct(&s.val); err != nil {
		var zero T
		s.val = zero
		return err
	}
	return nil
}

// take moves the cell's element into *out and re-zeroes the cell.
func (s *slot[T]) take(out *T) {
	*out = s.val
	var zero T
	s.val = zero
}

// clear re-zeroes the cell without reading it.
func (s *slot[T]) clear() {
	var zero T
	s.val = zero
}
