package strategy

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownChannel 渠道未注册
var ErrUnknownChannel = errors.New("unknown channel")

type ProcessorFactory func() PaymentProcessor

type NotifierFactory func() OrderNotifier

var (
	mu         sync.RWMutex
	processors = make(map[string]ProcessorFactory)
	notifiers  = make(map[string]NotifierFactory)
)

// RegisterProcessor 注册支付渠道，通常在实现文件的 init() 中调用
// 重复注册同名渠道会 panic
func RegisterProcessor(name string, factory ProcessorFactory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := processors[name]; ok {
		panic("payment channel is registered: " + name)
	}
	processors[name] = factory
}

// RegisterNotifier 注册订单通知方式
func RegisterNotifier(name string, factory NotifierFactory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := notifiers[name]; ok {
		panic("order notifier is registered: " + name)
	}
	notifiers[name] = factory
}

// NewProcessor 按渠道名创建支付策略，仅在装配阶段使用
func NewProcessor(name string) (PaymentProcessor, error) {
	mu.RLock()
	factory, ok := processors[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("payment %q: %w", name, ErrUnknownChannel)
	}
	return factory(), nil
}

// NewNotifier 按名称创建订单通知
func NewNotifier(name string) (OrderNotifier, error) {
	mu.RLock()
	factory, ok := notifiers[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("order notifier %q: %w", name, ErrUnknownChannel)
	}
	return factory(), nil
}

// ProcessorNames 已注册的支付渠道（有序）
func ProcessorNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(processors))
	for name := range processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
