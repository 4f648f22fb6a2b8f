package pixel

import (
	"image"
	"testing"
)

func TestFrameDiffRect(t *testing.T) {
	t.Run("clean", func(it *testing.T) {
		f := NewFrame(128, 32)
		if r, changed := f.DiffRect(f.Bounds()); changed {
			it.Errorf("expected no differences on a fresh frame, got %s", r)
		}
	})

	t.Run("single-pixel", func(it *testing.T) {
		f := NewFrame(128, 32)
		f.Pending().Set(10, 12, On)

		r, changed := f.DiffRect(f.Bounds())
		if !changed {
			it.Fatal("expected a difference")
		}
		if want := image.Rect(10, 8, 11, 16); r != want {
			it.Errorf("expected page-aligned rect %s, got %s", want, r)
		}
	})

	t.Run("outside-probe", func(it *testing.T) {
		f := NewFrame(128, 32)
		f.Pending().Set(100, 0, On)

		// Probing a disjoint region must not see the change.
		if r, changed := f.DiffRect(image.Rect(0, 0, 50, 32)); changed {
			it.Errorf("expected no differences in probe region, got %s", r)
		}
	})

	t.Run("bounding-box", func(it *testing.T) {
		f := NewFrame(128, 32)
		f.Pending().Set(4, 2, On)
		f.Pending().Set(90, 30, On)

		r, changed := f.DiffRect(f.Bounds())
		if !changed {
			it.Fatal("expected a difference")
		}
		if want := image.Rect(4, 0, 91, 32); r != want {
			it.Errorf("expected rect %s, got %s", want, r)
		}
	})
}

func TestFrameCommit(t *testing.T) {
	f := NewFrame(128, 32)
	f.Pending().Set(10, 4, On)
	f.Pending().Set(60, 20, On)

	// Committing the first page window leaves the second change pending.
	f.Commit(image.Rect(0, 0, 128, 8))
	if f.Synced() {
		t.Fatal("expected frame to remain out of sync")
	}
	if _, changed := f.DiffRect(image.Rect(0, 0, 128, 8)); changed {
		t.Error("expected first page to be in sync after commit")
	}

	f.Commit(f.Bounds())
	if !f.Synced() {
		t.Error("expected frame to be in sync after full commit")
	}
}

func TestFrameCommitRoundTrip(t *testing.T) {
	f := NewFrame(64, 32)
	for i := 0; i < 100; i++ {
		f.Pending().Set(i%64, (i*7)%32, Mono{On: i%3 != 0})
		if r, changed := f.DiffRect(f.Bounds()); changed {
			f.Commit(r)
		}
		if !f.Synced() {
			t.Fatalf("frame out of sync after commit %d", i)
		}
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(64, 32)
	f.Pending().Fill(On)
	f.Clear()
	if !f.Synced() {
		t.Error("expected cleared frame to be in sync")
	}
	if f.Pending().At(0, 0) != Off {
		t.Error("expected cleared frame to be blank")
	}
}
