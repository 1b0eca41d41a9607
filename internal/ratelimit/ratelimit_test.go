package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilLimiterAllowsEverything(t *testing.T) {
	var l *Limiter
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(context.Background(), "anyone"))
	}
}

func TestNewWithoutClientStaysNil(t *testing.T) {
	l := New(nil, "login", 5, time.Minute)
	assert.Nil(t, l)
	assert.True(t, l.Allow(context.Background(), "anyone"))
}
