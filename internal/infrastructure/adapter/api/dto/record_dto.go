package dto

import (
	"time"

	"github.com/amirhossein-jamali/safekeep/internal/domain/entity"
)

// RecordResponse represents one lock record in API responses
type RecordResponse struct {
	Owner         string    `json:"owner"`
	StartTime     int64     `json:"startTime"`
	EndTime       int64     `json:"endTime"`
	CycleSeconds  int64     `json:"cycleSeconds"`
	ConfigVersion uint64    `json:"configVersion"`
	Issuer        string    `json:"issuer"`
	Quantity      string    `json:"quantity"`
	Repeat        bool      `json:"repeat"`
	State         string    `json:"state"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RecordListResponse lists the records of one depositor
type RecordListResponse struct {
	Owner   string           `json:"owner"`
	Records []RecordResponse `json:"records"`
}

// RepeatRequest represents the API request for toggling repeat mode
type RepeatRequest struct {
	Repeat *bool `json:"repeat" binding:"required"`
}

// ExistsResponse answers a record existence query
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// NewRecordResponse maps a record to its API form
func NewRecordResponse(r *entity.Record) RecordResponse {
	return RecordResponse{
		Owner:         r.Owner,
		StartTime:     r.StartTime.Unix(),
		EndTime:       r.EndTime.Unix(),
		CycleSeconds:  int64(r.CycleDuration / time.Second),
		ConfigVersion: r.ConfigVersion,
		Issuer:        r.Issuer,
		Quantity:      r.Quantity.String(),
		Repeat:        r.Repeat,
		State:         string(r.State()),
		UpdatedAt:     r.UpdatedAt,
	}
}

// NewRecordListResponse maps the owner's records, never returning a null list
func NewRecordListResponse(owner string, records []*entity.Record) RecordListResponse {
	resp := RecordListResponse{Owner: owner, Records: make([]RecordResponse, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, NewRecordResponse(r))
	}
	return resp
}
