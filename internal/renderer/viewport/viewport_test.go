package viewport

import "testing"

func TestNewClampsSize(t *testing.T) {
	v := New(0, -3)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestScrollToContainNoMoveWhenVisible(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(10, 40)
	if v.TopLine() != 0 || v.LeftColumn() != 0 {
		t.Errorf("expected no scroll, got top=%d left=%d", v.TopLine(), v.LeftColumn())
	}
}

func TestScrollDownMinimal(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(30, 0)
	// Row 30 should land on the last window row.
	if v.TopLine() != 7 {
		t.Errorf("expected top line 7, got %d", v.TopLine())
	}
	if !v.Contains(30, 0) {
		t.Error("row 30 should be visible after scroll")
	}
}

func TestScrollUpMinimal(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(100, 0)
	v.ScrollToContain(50, 0)
	// Row 50 should land on the first window row.
	if v.TopLine() != 50 {
		t.Errorf("expected top line 50, got %d", v.TopLine())
	}
}

func TestHorizontalScroll(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(0, 100)
	if v.LeftColumn() != 21 {
		t.Errorf("expected left column 21, got %d", v.LeftColumn())
	}
	v.ScrollToContain(0, 5)
	if v.LeftColumn() != 5 {
		t.Errorf("expected left column 5, got %d", v.LeftColumn())
	}
}

func TestScrollMargins(t *testing.T) {
	v := New(80, 24, WithScrollMargins(3, 0))
	v.ScrollToContain(30, 0)
	// Row 30 should sit 3 rows above the bottom edge.
	if v.TopLine() != 10 {
		t.Errorf("expected top line 10, got %d", v.TopLine())
	}
	v.ScrollToContain(11, 0)
	if v.TopLine() != 8 {
		t.Errorf("expected top line 8, got %d", v.TopLine())
	}
}

func TestMarginsReducedForSmallWindow(t *testing.T) {
	v := New(80, 4, WithScrollMargins(10, 0))
	v.ScrollToContain(20, 0)
	if !v.Contains(20, 0) {
		t.Error("cursor row must be visible even with oversized margins")
	}
	if v.TopLine() < 0 {
		t.Errorf("top line underflowed: %d", v.TopLine())
	}
}

func TestResizeKeepsCursorVisible(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(40, 0)
	v.Resize(80, 10, 40, 0)
	if !v.Contains(40, 0) {
		t.Error("cursor row must stay visible after shrink")
	}
	if v.Height() != 10 {
		t.Errorf("expected height 10, got %d", v.Height())
	}
}

func TestScreenPosition(t *testing.T) {
	v := New(80, 24)
	v.ScrollToContain(30, 100)
	x, y := v.ScreenPosition(30, 100)
	if x < 0 || x >= v.Width() || y < 0 || y >= v.Height() {
		t.Errorf("screen position (%d,%d) outside window", x, y)
	}
}

func TestTopLineNeverNegative(t *testing.T) {
	v := New(80, 24, WithScrollMargins(5, 5))
	v.ScrollToContain(2, 1)
	if v.TopLine() != 0 || v.LeftColumn() != 0 {
		t.Errorf("expected origin, got top=%d left=%d", v.TopLine(), v.LeftColumn())
	}
}
