package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimed(t *testing.T) {
	boom := errors.New("boom")

	called := false

	err := timed("test", func() error {
		called = true

		return boom
	})

	assert.True(t, called)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, timed("test", func() error { return nil }))
}
