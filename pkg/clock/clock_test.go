package clock_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/b-hayes/notes/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestDefaultClock(t *testing.T) {
	assert.WithinDuration(t, time.Now(), clock.Now(), 1*time.Second)
}

func TestFreeze(t *testing.T) {
	clock.Freeze()
	defer clock.Unfreeze()
	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	// time is always the same
	assert.Equal(t, t1, clock.Now())
}

func TestFastForward(t *testing.T) {
	point := time.Date(2024, 3, 9, 23, 50, 0, 0, time.UTC)
	c := clock.FreezeAt(point)
	defer clock.Unfreeze()

	assert.Equal(t, point, clock.Now())
	c.FastForward(15 * time.Minute)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 5, 0, 0, time.UTC), clock.Now())
}

func TestUnfreeze(t *testing.T) {
	point := time.Date(2023, 1, 1, 14, 0, 0, 0, time.UTC)
	clock.FreezeAt(point)
	assert.Equal(t, point, clock.Now())

	clock.Unfreeze()
	assert.WithinDuration(t, time.Now(), clock.Now(), 1*time.Second)
}

func ExampleFreezeAt() {
	point := time.Date(2023, 1, 1, 14, 0, 0, 0, time.UTC)
	clock.FreezeAt(point)
	defer clock.Unfreeze()

	fmt.Println(clock.Now())
	// Output: 2023-01-01 14:00:00 +0000 UTC
}
