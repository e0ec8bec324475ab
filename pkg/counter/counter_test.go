package counter

import (
	"testing"
	"testing/quick"
)

func TestNew_Value(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{"default", 5},
		{"zero", 0},
		{"negative", -42},
		{"large", 1 << 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start)
			if c.Value() != tt.start {
				t.Errorf("Expected %d, got %d", tt.start, c.Value())
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		start int
		ops   []func(*Counter)
		want  int
	}{
		{"A initial", 5, nil, 5},
		{"B increment", 5, []func(*Counter){(*Counter).Increment}, 6},
		{"C decrement twice", 5, []func(*Counter){(*Counter).Decrement, (*Counter).Decrement}, 3},
		{"D below zero", 0, []func(*Counter){(*Counter).Decrement}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start)
			for _, op := range tt.ops {
				op(c)
			}
			if c.Value() != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, c.Value())
			}
		})
	}
}

func TestProperty_InitialValue(t *testing.T) {
	f := func(n int) bool {
		return New(n).Value() == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_Increments(t *testing.T) {
	f := func(n int32, k uint8) bool {
		c := New(int(n))
		for i := 0; i < int(k); i++ {
			c.Increment()
		}
		return c.Value() == int(n)+int(k)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_Decrements(t *testing.T) {
	f := func(n int32, k uint8) bool {
		c := New(int(n))
		for i := 0; i < int(k); i++ {
			c.Decrement()
		}
		return c.Value() == int(n)-int(k)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProperty_IncrementDecrementInverse(t *testing.T) {
	f := func(n int32) bool {
		c := New(int(n))
		c.Increment()
		c.Decrement()
		return c.Value() == int(n)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIncrement_NotIdempotent(t *testing.T) {
	c := New(1)
	c.Increment()
	first := c.Value()
	c.Increment()
	if c.Value() == first {
		t.Errorf("Expected second increment to change value, still %d", first)
	}
}

func TestAddListener_NotifiedAfterChange(t *testing.T) {
	c := New(5)
	var seen []int
	c.AddListener(func() {
		seen = append(seen, c.Value())
	})

	c.Increment()
	c.Decrement()
	c.Decrement()

	want := []int{6, 5, 4}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d: expected %d, got %d", i, want[i], seen[i])
		}
	}
}

func TestAddListener_RegistrationOrder(t *testing.T) {
	c := New(0)
	var order []string
	c.AddListener(func() { order = append(order, "a") })
	c.AddListener(func() { order = append(order, "b") })

	c.Increment()

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Expected [a b], got %v", order)
	}
}

func TestAddListener_NilIsIgnored(t *testing.T) {
	c := New(0)
	unsub := c.AddListener(nil)
	unsub()
	if c.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", c.ListenerCount())
	}
	c.Increment()
}

func TestUnsubscribe(t *testing.T) {
	c := New(0)
	calls := 0
	unsub := c.AddListener(func() { calls++ })
	other := c.AddListener(func() {})

	unsub()
	unsub()
	c.Increment()

	if calls != 0 {
		t.Errorf("Expected no calls after unsubscribe, got %d", calls)
	}
	if c.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", c.ListenerCount())
	}
	other()
	if c.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", c.ListenerCount())
	}
}

func TestUnsubscribe_DuringNotify(t *testing.T) {
	c := New(0)
	calls := 0
	var unsub func()
	unsub = c.AddListener(func() {
		calls++
		unsub()
	})
	c.AddListener(func() { calls++ })

	c.Increment()
	c.Increment()

	// First change reaches both listeners, the second only the survivor.
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestDispose(t *testing.T) {
	c := New(3)
	calls := 0
	c.AddListener(func() { calls++ })

	c.Dispose()
	c.Increment()

	if calls != 0 {
		t.Errorf("Expected no notifications after dispose, got %d", calls)
	}
	if c.Value() != 4 {
		t.Errorf("Expected 4, got %d", c.Value())
	}
}
