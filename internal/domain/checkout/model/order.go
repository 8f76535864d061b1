package model

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusOpen OrderStatus = "open"
	OrderStatusPaid OrderStatus = "paid"
)

// Order 订单模型
type Order struct {
	CustomerName string      `json:"customer_name"`
	TotalPrice   float64     `json:"total_price"`
	Status       OrderStatus `json:"status"` // open, paid
}

// NewOrder 创建状态为 open 的订单
func NewOrder(customerName string, totalPrice float64) *Order {
	return &Order{
		CustomerName: customerName,
		TotalPrice:   totalPrice,
		Status:       OrderStatusOpen,
	}
}

// MarkPaid 标记为已支付，状态只进不退
func (o *Order) MarkPaid() {
	o.Status = OrderStatusPaid
}

// IsPaid 是否已支付
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}
