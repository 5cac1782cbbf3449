// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Direction tells whether a message was received by or sent from this access
// point. The set is closed.
type Direction string

const (
	// DirectionIn marks statistics for inbound messages.
	DirectionIn Direction = "IN"

	// DirectionOut marks statistics for outbound messages.
	DirectionOut Direction = "OUT"
)

// RawStatistics is one record of the raw message statistics an access point
// accumulates: who exchanged which document type over which channel, and
// when. Records are persisted through a dialect-specific repository and
// later aggregated and downloaded by the statistics collector.
type RawStatistics struct {
	// ID is the backend-generated primary key of the record.
	// It is zero until the record has been persisted.
	ID int64 `json:"-"`

	// MessageID is the UUID of the transmission the record belongs to.
	MessageID string `json:"message_id"`

	// AccessPointID identifies the access point that produced the record.
	AccessPointID string `json:"access_point_id"`

	// Direction is IN for received and OUT for transmitted messages.
	Direction Direction `json:"direction"`

	// Timestamp is when the message passed through the access point.
	Timestamp time.Time `json:"timestamp"`

	// Sender is the PEPPOL participant identifier of the sending party.
	Sender string `json:"sender"`

	// Receiver is the PEPPOL participant identifier of the receiving party.
	Receiver string `json:"receiver"`

	// DocumentType is the full PEPPOL document type identifier.
	DocumentType string `json:"document_type"`

	// Profile is the process/profile identifier the exchange belongs to.
	Profile string `json:"profile"`

	// ChannelID names the delivery channel, when one was used.
	ChannelID string `json:"channel_id"`

	// DownloadedAt is set once the collector has fetched the record.
	// Nil for records not yet downloaded.
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`
}

// EnsureMessageID assigns a fresh message UUID when none was provided, so
// every persisted record can be traced back to a transmission.
func (r *RawStatistics) EnsureMessageID() {
	if r.MessageID == "" {
		r.MessageID = uuid.NewString()
	}
}

// TableName returns the name of the database table
// associated with the RawStatistics model.
func (r RawStatistics) TableName() string {
	return "raw_stats"
}
