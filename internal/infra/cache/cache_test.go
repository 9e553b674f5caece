package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type report struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

func TestCache_SetIfVersionAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute, nopLogger{})
	ctx := context.Background()

	key := SalesReportKey(domain.SalesMonthly)
	data := []byte(`[{"label":"2024-01","total":30}]`)
	mock.ExpectGet(VersionKey(key)).RedisNil()
	mock.ExpectEval(SetIfVersionScript, []string{key, VersionKey(key)}, "0", data, int64(60000)).SetVal(int64(1))
	mock.ExpectGet(key).SetVal(string(data))

	version := c.Version(ctx, key)
	require.Equal(t, "0", version)
	c.SetIfVersion(ctx, key, version, []report{{Label: "2024-01", Total: 30}})

	var got []report
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, []report{{Label: "2024-01", Total: 30}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Если версию прочитать не удалось, значение не пишется вовсе
func TestCache_SetIfVersion_UnknownVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute, nopLogger{})
	ctx := context.Background()

	mock.ExpectGet(VersionKey(KeyMenuList)).SetErr(errors.New("connection refused"))

	version := c.Version(ctx, KeyMenuList)
	assert.Empty(t, version)
	c.SetIfVersion(ctx, KeyMenuList, version, []int{1})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetMissAndError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute, nopLogger{})
	ctx := context.Background()

	mock.ExpectGet(KeyMenuList).RedisNil()
	mock.ExpectGet(KeyMenuList).SetErr(errors.New("connection refused"))
	mock.ExpectGet(KeyMenuList).SetVal("not json")

	var dest []report
	assert.False(t, c.Get(ctx, KeyMenuList, &dest))
	assert.False(t, c.Get(ctx, KeyMenuList, &dest))
	assert.False(t, c.Get(ctx, KeyMenuList, &dest))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db, time.Minute, nopLogger{})

	mock.ExpectIncr("pos:sales:daily:version").SetVal(1)
	mock.ExpectIncr("pos:sales:monthly:version").SetVal(1)
	mock.ExpectIncr("pos:sales:yearly:version").SetVal(1)
	mock.ExpectDel("pos:sales:daily", "pos:sales:monthly", "pos:sales:yearly").SetVal(3)

	c.Delete(context.Background(), SalesReportKeys()...)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Disabled(t *testing.T) {
	c := New(nil, time.Minute, nopLogger{})
	ctx := context.Background()

	assert.False(t, c.Enabled())
	assert.Empty(t, c.Version(ctx, KeyMenuList))
	c.SetIfVersion(ctx, KeyMenuList, "0", []int{1})
	c.Delete(ctx, KeyMenuList)

	var dest []int
	assert.False(t, c.Get(ctx, KeyMenuList, &dest))
	assert.NoError(t, c.Ping(ctx))
}
