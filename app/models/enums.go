package models

// PaymentMethod defines how a collection or advance payment was made.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// IsValid reports whether the method is one of the accepted values.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentOnline
}

// StudentStatus defines the membership status of a student.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
