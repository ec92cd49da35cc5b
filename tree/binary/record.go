package binary

// The record queue is first in, first out. It is named for what it
// is to the animation: the stack of nodes still to be highlighted.

func (t *Tree[T]) record(k T) {
	t.records = append(t.records, k)
}

// NextRecord removes and returns the oldest recorded key.
// ok is false if there are no records.
func (t *Tree[T]) NextRecord() (k T, ok bool) {
	if len(t.records) == 0 {
		return
	}

	k = t.records[0]
	t.records = t.records[1:]
	if len(t.records) == 0 {
		t.records = nil
	}

	return k, true
}

// LastRecord removes and returns the newest recorded key.
// ok is false if there are no records.
func (t *Tree[T]) LastRecord() (k T, ok bool) {
	if len(t.records) == 0 {
		return
	}

	k = t.records[len(t.records)-1]
	t.records = t.records[:len(t.records)-1]

	return k, true
}

// ClearRecords drops all pending records.
func (t *Tree[T]) ClearRecords() {
	t.records = nil
}

// RecordLen returns the number of pending records.
func (t *Tree[T]) RecordLen() int {
	return len(t.records)
}

// Records returns a copy of the pending records, oldest first.
func (t *Tree[T]) Records() []T {
	if len(t.records) == 0 {
		return nil
	}
	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}
