package models

import "time"

// DeliveryReport is the normalized record of a successful send. Channels
// derive it from a message's metadata view; transports render or record it.
type DeliveryReport struct {
	Channel     string    `json:"channel"`
	Recipient   string    `json:"recipient"`
	MessageID   string    `json:"message_id"`
	MessageType string    `json:"message_type"`
	Text        string    `json:"text"`
	FilePath    string    `json:"file_path,omitempty"`
	Format      string    `json:"format,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}
