package awsutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitteredExponentialBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		i     int
		slept []time.Duration
	)
	for d := range JitteredExponentialBackoff(ctx, 10*time.Millisecond, 40*time.Millisecond) {
		slept = append(slept, d)
		if i >= 4 {
			break
		}
		i++
	}
	assert.Equal(t, time.Duration(0), slept[0])
	for _, d := range slept[1:] {
		assert.True(t, d >= 7*time.Millisecond && d <= 50*time.Millisecond, d)
	}
}

func TestJitteredExponentialBackoffClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := JitteredExponentialBackoff(ctx, time.Hour, time.Hour)
	<-ch
	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}
