// Package cache JSON кэш поверх Redis. Cache с nil клиентом ничего не делает,
// поэтому сервисы работают одинаково при включённом и выключенном Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

const keyPrefix = "pos:"

// KeyMenuList ключ списка меню
const KeyMenuList = keyPrefix + "menu:list"

// SalesReportKey ключ отчёта продаж указанной гранулярности
func SalesReportKey(reportType domain.SalesReportType) string {
	return keyPrefix + "sales:" + string(reportType)
}

// SalesReportKeys ключи всех отчётов продаж (для инвалидации)
func SalesReportKeys() []string {
	return []string{
		SalesReportKey(domain.SalesDaily),
		SalesReportKey(domain.SalesMonthly),
		SalesReportKey(domain.SalesYearly),
	}
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache кэш
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger Logger
}

// New создает кэш. client == nil - кэш выключен.
func New(client redis.Cmdable, ttl time.Duration, logger Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Enabled true, если кэш подключён к Redis
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get читает значение в dest. Возвращает false при промахе или ошибке Redis.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache: get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Cache: decode %s failed: %v", key, err)
		return false
	}

	return true
}

// VersionKey ключ счётчика инвалидаций для key
func VersionKey(key string) string {
	return key + ":version"
}

// SetIfVersionScript Lua-скрипт условной записи: пишет KEYS[1] только если счётчик KEYS[2] не менялся с момента чтения
const SetIfVersionScript = `
local v = redis.call('GET', KEYS[2]) or '0'
if v ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`

// Version читает счётчик инвалидаций ключа. Читать нужно до похода в БД:
// SetIfVersion с этим значением не перезапишет кэш, если Delete успел пройти.
// Пустая строка - кэш выключен или Redis недоступен, SetIfVersion её пропускает.
func (c *Cache) Version(ctx context.Context, key string) string {
	if !c.Enabled() {
		return ""
	}

	version, err := c.client.Get(ctx, VersionKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "0"
		}
		c.logger.Warn("Cache: get version of %s failed: %v", key, err)
		return ""
	}

	return version
}

// SetIfVersion сохраняет значение с TTL кэша, если с момента Version ключ не инвалидировали.
// Ошибки только логируются.
func (c *Cache) SetIfVersion(ctx context.Context, key, version string, value interface{}) {
	if !c.Enabled() || version == "" {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache: encode %s failed: %v", key, err)
		return
	}

	stored, err := c.client.Eval(ctx, SetIfVersionScript, []string{key, VersionKey(key)}, version, data, c.ttl.Milliseconds()).Int64()
	if err != nil {
		c.logger.Warn("Cache: set %s failed: %v", key, err)
		return
	}
	if stored == 0 {
		c.logger.Info("Cache: %s invalidated while loading, skip set", key)
	}
}

// Delete инвалидирует ключи: сначала увеличивает их счётчики, затем удаляет значения.
// Ошибки только логируются.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	for _, key := range keys {
		if err := c.client.Incr(ctx, VersionKey(key)).Err(); err != nil {
			c.logger.Warn("Cache: bump version of %s failed: %v", key, err)
		}
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache: delete %v failed: %v", keys, err)
	}
}

// Ping проверяет доступность Redis (для /health)
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
