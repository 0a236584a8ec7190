// Package tags provides the invalidation token used to track when helper
// output must be recomputed.
//
// A Tag is a cheap revision counter. Producers call Dirty when the data a
// tag guards has changed; consumers call Consume while a Tracker frame is
// open to record the tag as a read dependency. A Snapshot taken when the
// frame ends can later be checked with Valid to decide whether any recorded
// dependency changed since the value was computed.
//
// Tags are single-threaded by contract: they must only be touched from the
// host run loop. To dirty a tag from a background goroutine, route the call
// through the scheduler package.
package tags

// Revision is a monotonically increasing change counter.
type Revision uint64

// initialRevision is the revision of a freshly created tag. Starting above
// zero lets a zero Snapshot mean "never computed".
const initialRevision Revision = 1

// Tag is an invalidation token. Create tags with New; the zero value is not
// usable.
type Tag struct {
	revision Revision
}

// New creates a tag at the initial revision.
func New() *Tag {
	return &Tag{revision: initialRevision}
}

// Dirty advances the tag's revision, invalidating every snapshot that
// recorded it.
func Dirty(t *Tag) {
	if t == nil {
		return
	}
	t.revision++
}

// Value returns the tag's current revision. Comparing revisions across
// reads is how consumers detect staleness without polling.
func Value(t *Tag) Revision {
	if t == nil {
		return 0
	}
	return t.revision
}

// Consume records t as a read dependency of the innermost open Tracker
// frame. Outside a frame it is a no-op.
func Consume(t *Tag) {
	if t == nil || current == nil {
		return
	}
	current.record(t)
}

// Tracker is one open tracking frame. Frames nest: reads recorded in an
// inner frame propagate to the enclosing frame when the inner frame ends,
// so a caller observes the dependencies of everything it invoked.
type Tracker struct {
	tags   map[*Tag]bool
	order  []*Tag
	parent *Tracker
}

// current is the innermost open frame, or nil when no tracking is active.
var current *Tracker

// Begin opens a tracking frame. Every Begin must be paired with End.
func Begin() {
	current = &Tracker{
		tags:   make(map[*Tag]bool),
		parent: current,
	}
}

// End closes the innermost frame and returns a snapshot of the tags it
// recorded. The recorded reads are propagated to the enclosing frame, if
// any. End panics if no frame is open.
func End() Snapshot {
	if current == nil {
		panic("tags: End called without a matching Begin")
	}
	frame := current
	current = frame.parent

	snapshot := Snapshot{
		tags:      frame.order,
		revisions: make([]Revision, len(frame.order)),
	}
	for i, t := range frame.order {
		snapshot.revisions[i] = t.revision
	}

	if current != nil {
		for _, t := range frame.order {
			current.record(t)
		}
	}
	return snapshot
}

func (tr *Tracker) record(t *Tag) {
	if tr.tags[t] {
		return
	}
	tr.tags[t] = true
	tr.order = append(tr.order, t)
}

// Snapshot is the set of tags recorded by one tracking frame, pinned at the
// revisions they had when the frame ended. The zero Snapshot is always
// invalid.
type Snapshot struct {
	tags      []*Tag
	revisions []Revision
}

// Valid reports whether none of the recorded tags have been dirtied since
// the snapshot was taken. A zero snapshot reports false so callers compute
// at least once.
func (s Snapshot) Valid() bool {
	if s.revisions == nil {
		return false
	}
	for i, t := range s.tags {
		if t.revision != s.revisions[i] {
			return false
		}
	}
	return true
}

// Size returns the number of distinct tags the snapshot recorded.
func (s Snapshot) Size() int {
	return len(s.tags)
}
