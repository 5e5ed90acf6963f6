package meeting

import "time"

// Status of a meeting request
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// JoinRequestStatus of a pending Discord join request
type JoinRequestStatus string

const (
	JoinPending  JoinRequestStatus = "pending"
	JoinApproved JoinRequestStatus = "approved"
	JoinRejected JoinRequestStatus = "rejected"
)

// Record is a meeting request as returned by the service
type Record struct {
	ID              string           `json:"_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Status          Status           `json:"status"`
	IsActive        bool             `json:"isActive"`
	Participants    []Participant    `json:"participants"`
	TemporaryGuests []TemporaryGuest `json:"temporaryGuests"`
	JoinRequests    []JoinRequest    `json:"joinRequests"`
	Hoster          *Hoster          `json:"hoster,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Participant is a team member attending a meeting
type Participant struct {
	MemberID     string `json:"memberId"`
	Name         string `json:"name"`
	DiscordUID   string `json:"discordUid,omitempty"`
	MeetingRole  string `json:"meetingRole"`
	MeetingClass string `json:"meetingClass"`
	Position     int    `json:"position"`
}

// TemporaryGuest is a non-member admitted to a single meeting
type TemporaryGuest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DiscordUID   string   `json:"discordUid,omitempty"`
	Roles        []string `json:"roles"`
	Classes      []string `json:"classes"`
	MeetingRole  string   `json:"meetingRole"`
	MeetingClass string   `json:"meetingClass"`
	Position     int      `json:"position"`
}

// JoinRequest is a Discord user's request to participate
type JoinRequest struct {
	DiscordUID     string            `json:"discordUid"`
	Name           string            `json:"name"`
	RequestedRole  string            `json:"requestedRole"`
	RequestedClass string            `json:"requestedClass"`
	Status         JoinRequestStatus `json:"status"`
	RequestedAt    time.Time         `json:"requestedAt"`
	ProcessedAt    *time.Time        `json:"processedAt,omitempty"`
	ProcessedBy    string            `json:"processedBy,omitempty"`
	Reason         string            `json:"reason,omitempty"`
}

// Hoster is the participant selected server-side to host a meeting
type Hoster struct {
	MemberID     string     `json:"memberId"`
	Name         string     `json:"name"`
	DiscordUID   string     `json:"discordUid,omitempty"`
	MeetingRole  string     `json:"meetingRole"`
	MeetingClass string     `json:"meetingClass"`
	Score        float64    `json:"score,omitempty"`
	SelectedAt   *time.Time `json:"selectedAt,omitempty"`
}

// HosterSelection is the payload of the select-hoster endpoints
type HosterSelection struct {
	Message         string  `json:"message,omitempty"`
	Hoster          *Hoster `json:"hoster"`
	AlreadySelected bool    `json:"alreadySelected"`
}

// Meeting decodes a single meeting record payload
func (e Envelope) Meeting() (*Record, error) {
	var r Record
	if err := e.record().Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Meetings decodes a list of meeting records
func (e Envelope) Meetings() ([]Record, error) {
	var rs []Record
	if err := e.record().Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// JoinRequests decodes a list of join requests
func (e Envelope) JoinRequests() ([]JoinRequest, error) {
	var rs []JoinRequest
	if err := e.record().Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// HosterSelection decodes a select-hoster or get-hoster payload. Hoster is nil
// when none has been selected yet.
func (e Envelope) HosterSelection() (*HosterSelection, error) {
	var hs HosterSelection
	if err := e.Decode(&hs); err != nil {
		return nil, err
	}
	return &hs, nil
}
