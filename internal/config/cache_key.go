package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the counter key for a client IP within a fixed window.
// window is the window start as a unix timestamp.
func (r *CacheKeyStruct) RateLimitKey(ip string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", ip, window)
}

var CacheKey = NewCacheKeyStruct()
