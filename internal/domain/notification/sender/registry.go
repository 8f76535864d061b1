package sender

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownChannel 渠道未注册
var ErrUnknownChannel = errors.New("unknown notification channel")

type Factory func() Sender

var (
	mu      sync.RWMutex
	senders = make(map[string]Factory)
)

// Register 注册发送渠道，重复注册会 panic
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := senders[name]; ok {
		panic("notification channel is registered: " + name)
	}
	senders[name] = factory
}

// New 按名称创建发送渠道，仅在装配阶段使用
func New(name string) (Sender, error) {
	mu.RLock()
	factory, ok := senders[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownChannel)
	}
	return factory(), nil
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(senders))
	for name := range senders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
