package redis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.True(t, IsMiss(fmt.Errorf("cache read: %w", redis.Nil)))
	assert.False(t, IsMiss(nil))
	assert.False(t, IsMiss(errors.New("connection refused")))
}
