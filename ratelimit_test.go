package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiter(t *testing.T) {
	l := newIPLimiter(2, time.Minute)

	assert.True(t, l.allow("192.0.2.1"))
	assert.True(t, l.allow("192.0.2.1"))
	assert.False(t, l.allow("192.0.2.1"))

	assert.True(t, l.allow("192.0.2.2"), "clients are limited independently")
}

func TestIPLimiter_Disabled(t *testing.T) {
	l := newIPLimiter(0, time.Minute)
	assert.Nil(t, l)

	for range 100 {
		assert.True(t, l.allow("192.0.2.1"))
	}
	assert.Equal(t, 0, l.sweep(time.Now()))
}

func TestIPLimiter_Sweep(t *testing.T) {
	l := newIPLimiter(1, time.Minute)

	assert.True(t, l.allow("192.0.2.1"))
	assert.False(t, l.allow("192.0.2.1"))

	assert.Equal(t, 0, l.sweep(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, l.sweep(time.Now().Add(time.Second)))

	assert.True(t, l.allow("192.0.2.1"), "swept clients start with a full bucket")
}
