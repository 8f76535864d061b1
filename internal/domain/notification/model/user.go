package model

// User 通知接收人，通知流程中只读
type User struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
