package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"checkout_solid/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter 存储每个IP的限流器
type IPRateLimiter struct {
	ips map[string]*visitor
	mu  sync.Mutex
	r   rate.Limit
	b   int
	now func() time.Time
}

// NewIPRateLimiter 创建一个新的IP限流器
// r: 每秒允许的请求数 (QPS)
// b: 桶的大小 (Burst)
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

// GetLimiter 获取指定IP的限流器
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = i.now()

	return v.limiter
}

// Evict 清理超过 idle 未访问的IP，返回清理数量
func (i *IPRateLimiter) Evict(idle time.Duration) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	cutoff := i.now().Add(-idle)
	evicted := 0
	for ip, v := range i.ips {
		if v.lastSeen.Before(cutoff) {
			delete(i.ips, ip)
			evicted++
		}
	}
	return evicted
}

// Len 当前跟踪的IP数量
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// StartEviction 每隔 interval 清理一次空闲IP，ctx 取消后退出
func (i *IPRateLimiter) StartEviction(ctx context.Context, interval, idle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				i.Evict(idle)
			}
		}
	}()
}

// RateLimitMiddleware 限流中间件
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Abort(c, http.StatusTooManyRequests, response.ErrTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
