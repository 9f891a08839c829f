package models

import "time"

// Message is an inbound lead from a site visitor to a provider.
// Messages are append-only: no update or delete path exists.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProviderID  uint      `gorm:"index;not null" json:"provider_id"`
	ClientName  string    `gorm:"size:100" json:"client_name"`
	ClientPhone string    `gorm:"size:50" json:"client_phone"`
	ClientEmail string    `gorm:"size:100" json:"client_email,omitempty"`
	MessageText string    `gorm:"type:text" json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}
