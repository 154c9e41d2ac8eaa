package gorm

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestTrace(t *testing.T) {
	statement := func() (string, int64) { return "SELECT 1", 1 }

	testCases := []struct {
		name     string
		level    gormlogger.LogLevel
		begin    time.Time
		err      error
		contains string
	}{
		{name: "record not found is silent", level: gormlogger.Info, begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "silent level", level: gormlogger.Silent, begin: time.Now(), err: errors.New("boom")},
		{name: "error", level: gormlogger.Error, begin: time.Now(), err: errors.New("boom"), contains: "statement failed"},
		{name: "slow statement", level: gormlogger.Warn, begin: time.Now().Add(-time.Second), contains: "slow statement"},
		{name: "fast statement below info", level: gormlogger.Warn, begin: time.Now()},
		{name: "statement at info", level: gormlogger.Info, begin: time.Now(), contains: "SELECT 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
			New(&zl, tc.level).Trace(context.Background(), tc.begin, statement, tc.err)

			if tc.contains == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tc.contains)
		})
	}
}

func TestLogMode(t *testing.T) {
	var buf bytes.Buffer

	zl := zerolog.New(&buf)
	l := New(&zl, gormlogger.Silent)

	l.Warn(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.LogMode(gormlogger.Warn).Warn(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Equal(t, gormlogger.Silent, l.level)
}
