package value

import "testing"

func TestIntWidthBounds(t *testing.T) {
	min32, max32 := Width32.Bounds()
	if min32 != -2147483648 || max32 != 2147483647 {
		t.Fatalf("Width32.Bounds() = (%d, %d), want (-2147483648, 2147483647)", min32, max32)
	}

	min64, max64 := Width64.Bounds()
	if min64 != -9223372036854775808 || max64 != 9223372036854775807 {
		t.Fatalf("Width64.Bounds() = (%d, %d), want int64 limits", min64, max64)
	}
}

func TestIntWidthInRange(t *testing.T) {
	if !Width32.InRange(2147483647) {
		t.Fatalf("MaxInt32 should be in range for Width32")
	}
	if Width32.InRange(2147483648) {
		t.Fatalf("MaxInt32+1 should be out of range for Width32")
	}
	if !Width64.InRange(-9223372036854775808) {
		t.Fatalf("MinInt64 should be in range for Width64")
	}
}
