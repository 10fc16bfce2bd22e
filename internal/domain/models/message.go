package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MessageSchemaVersion is the current prediction message contract version.
// Messages carrying any other version are rejected at the queue boundary.
const MessageSchemaVersion = 1

// PredictionMessage is the queue payload that triggers one pipeline run.
type PredictionMessage struct {
	SchemaVersion int     `json:"schema_version"`
	IDUser        string  `json:"id_user"`
	IDRequest     string  `json:"id_request"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CropType      string  `json:"crop_type"`
	StartMonth    string  `json:"start_month"`

	// Continuation controls for the multi-month experiment. Carried on the
	// wire but the re-publish path is disabled.
	PredictionDays      string `json:"prediction_days,omitempty"`
	ContinueToNextMonth bool   `json:"continue_to_next_month,omitempty"`
}

// DecodePredictionMessage parses and validates a queue payload. Unknown
// fields, missing required fields and version mismatches are all rejected so
// malformed producers fail loudly instead of running a broken pipeline.
func DecodePredictionMessage(data []byte) (PredictionMessage, error) {
	var msg PredictionMessage

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&msg); err != nil {
		return PredictionMessage{}, fmt.Errorf("decode prediction message: %w", err)
	}

	if err := msg.Validate(); err != nil {
		return PredictionMessage{}, err
	}

	return msg, nil
}

// Validate checks the message against the v1 contract.
func (m PredictionMessage) Validate() error {
	if m.SchemaVersion != MessageSchemaVersion {
		return fmt.Errorf("unsupported prediction message schema version %d", m.SchemaVersion)
	}
	if m.IDUser == "" {
		return fmt.Errorf("prediction message missing id_user")
	}
	if m.IDRequest == "" {
		return fmt.Errorf("prediction message missing id_request")
	}
	if m.CropType == "" {
		return fmt.Errorf("prediction message missing crop_type")
	}
	if m.StartMonth == "" {
		return fmt.Errorf("prediction message missing start_month")
	}
	if m.Latitude < -90 || m.Latitude > 90 {
		return fmt.Errorf("prediction message latitude %v out of range", m.Latitude)
	}
	if m.Longitude < -180 || m.Longitude > 180 {
		return fmt.Errorf("prediction message longitude %v out of range", m.Longitude)
	}
	return nil
}

// Encode serializes the message for publishing.
func (m PredictionMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}
