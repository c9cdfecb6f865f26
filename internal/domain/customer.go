package domain

import "time"

type LoyaltyStatus string

const (
	LoyaltyVIP      LoyaltyStatus = "VIP"
	LoyaltyActive   LoyaltyStatus = "Active"
	LoyaltyInactive LoyaltyStatus = "Inactive"
	LoyaltyNew      LoyaltyStatus = "New"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

type Customer struct {
	ID            string        `json:"id"`
	LeadID        string        `json:"leadId,omitempty"` // origin lead, non-owning soft link
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	Company       string        `json:"company"`
	City          string        `json:"city,omitempty"`
	CustomerSince time.Time     `json:"customerSince"`
	LoyaltyStatus LoyaltyStatus `json:"loyaltyStatus"`
	TotalRevenue  float64       `json:"totalRevenue"`

	ActiveDealsCount     int           `json:"activeDealsCount"`
	PreferredLanguage    string        `json:"preferredLanguage,omitempty"`
	PreferredContactTime string        `json:"preferredContactTime,omitempty"`
	Tags                 []string      `json:"tags,omitempty"`
	LastPurchaseDate     *time.Time    `json:"lastPurchaseDate,omitempty"`
	SubscriptionRenewal  *time.Time    `json:"subscriptionRenewal,omitempty"`
	PaymentStatus        PaymentStatus `json:"paymentStatus,omitempty"`
	LastWhatsAppSent     *time.Time    `json:"lastWhatsAppSent,omitempty"`
	AssignedToID         string        `json:"assignedToId"`
}
