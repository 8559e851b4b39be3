package lca

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCertified Status = "certified"
	StatusWithdrawn Status = "withdrawn"
	StatusExpired   Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCertified, StatusWithdrawn, StatusExpired:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

type VisaType string

const (
	VisaH1B  VisaType = "H-1B"
	VisaH1B1 VisaType = "H-1B1"
	VisaE3   VisaType = "E-3"
)

// Record is the flat field set of a posting as submitted. Field order matters:
// it is the JSON layout the content hash is computed over.
type Record struct {
	JobTitle           string   `json:"job_title"`
	LCANumber          string   `json:"lca_number"`
	VisaType           VisaType `json:"visa_type"`
	EmployerName       string   `json:"employer_name"`
	WageRateFrom       float64  `json:"wage_rate_from"`
	WageRateTo         *float64 `json:"wage_rate_to"`
	WageUnit           string   `json:"wage_unit"`
	PrevailingWage     float64  `json:"prevailing_wage"`
	WorksiteAddress    string   `json:"worksite_address"`
	WorksiteCity       string   `json:"worksite_city"`
	WorksiteState      string   `json:"worksite_state"`
	WorksitePostalCode string   `json:"worksite_postal_code"`
	FullTime           bool     `json:"full_time"`
	BeginDate          string   `json:"begin_date"`
	EndDate            string   `json:"end_date"`
	PostingStartDate   string   `json:"posting_start_date"`
	PostingEndDate     string   `json:"posting_end_date"`
	Status             Status   `json:"status"`
}

type Posting struct {
	ID string `json:"id"`
	Record
	BlockchainHash string    `json:"blockchain_hash"`
	CreatedAt      time.Time `json:"created_at"`
}

type EventType string

const (
	EventPostingCreated       EventType = "lca_posting_created"
	EventPostingStatusChanged EventType = "lca_posting_status_changed"
)

type Event struct {
	Type      EventType `json:"type"`
	PostingID string    `json:"posting_id"`
	LCANumber string    `json:"lca_number"`
	Status    Status    `json:"status"`
	Timestamp string    `json:"timestamp"`
}

func NewEvent(t EventType, p Posting, at time.Time) Event {
	return Event{
		Type:      t,
		PostingID: p.ID,
		LCANumber: p.LCANumber,
		Status:    p.Status,
		Timestamp: at.UTC().Format(time.RFC3339),
	}
}
