package cache

import (
	"github.com/pkg/errors"

	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

const (
	summaryKeyPrefix    = "summary:"
	summaryTTLInSeconds = 3600
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(owner string) string {
	return summaryKeyPrefix + owner
}

func (mc *MemcacheClient) CacheSummary(owner string, payload string) error {
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(owner),
		Value:      []byte(payload),
		Expiration: summaryTTLInSeconds},
	)
}

func (mc *MemcacheClient) GetSummary(owner string) (string, error) {
	item, err := mc.client.Get(formatKey(owner))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateSummary(owner string) error {
	logger.Info("invalidate summary cache", zap.String("owner", owner))

	err := mc.client.Delete(formatKey(owner))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
