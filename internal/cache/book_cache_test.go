package cache

import (
	"context"
	"testing"

	"bookhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

// A nil cache must behave like a permanent miss so the service can run
// without Redis.
func TestNilCacheIsNoop(t *testing.T) {
	var c *BookCache
	ctx := context.Background()

	record, err := c.Get(ctx, 1, "abc123")
	assert.NoError(t, err)
	assert.Nil(t, record)

	assert.NoError(t, c.Set(ctx, &models.BookRecord{BookID: "abc123", UserID: 1}))
	assert.NoError(t, c.Invalidate(ctx, 1, "abc123"))
	assert.NoError(t, c.Close())
}

func TestBookKey(t *testing.T) {
	assert.Equal(t, "book:user:1:book:abc123", bookKey(1, "abc123"))
}
