package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolWait(prev, prev)

		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond, InUse: 4}

		level, attrs, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, "waits", attrs[0].Key)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}

		level, _, waited := poolWait(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
