package meeting

import (
	"context"

	corehttp "github.com/kochabx/meetclient/core/net/http"
)

// DefaultJoinMessage is reported when a successful join response carries no message
const DefaultJoinMessage = "Join request submitted successfully"

// JoinMeetingRequest asks for a Discord user to join a meeting. Avatar is optional.
type JoinMeetingRequest struct {
	MeetingID      string
	DiscordUID     string
	Name           string
	RequestedRole  string
	RequestedClass string
	Avatar         string
}

// joinMeetingBody is the wire form; avatar is sent only when set
type joinMeetingBody struct {
	MeetingID      string `json:"meetingId"`
	DiscordUID     string `json:"discordUid"`
	Name           string `json:"name"`
	RequestedRole  string `json:"requestedRole"`
	RequestedClass string `json:"requestedClass"`
	Avatar         string `json:"avatar,omitempty"`
}

func (r JoinMeetingRequest) body() joinMeetingBody {
	return joinMeetingBody{
		MeetingID:      r.MeetingID,
		DiscordUID:     r.DiscordUID,
		Name:           r.Name,
		RequestedRole:  r.RequestedRole,
		RequestedClass: r.RequestedClass,
		Avatar:         r.Avatar,
	}
}

// JoinMeetingResult is the outcome of RequestJoinMeeting. On success Error is
// empty; on failure only Error is set.
type JoinMeetingResult struct {
	Success          bool
	Message          string
	MeetingTitle     string
	NewMemberCreated bool
	Error            string
}

// RequestJoinMeeting submits a join request on behalf of a Discord user
func (c *Client) RequestJoinMeeting(ctx context.Context, req JoinMeetingRequest) (JoinMeetingResult, error) {
	env, err := c.dispatch(ctx, corehttp.MethodPost, RouteJoinMeeting, RouteJoinMeeting, req.body())
	if err != nil {
		return JoinMeetingResult{}, err
	}
	return joinResult(env), nil
}

func joinResult(env Envelope) JoinMeetingResult {
	if !env.Success {
		return JoinMeetingResult{Error: env.Error}
	}

	res := JoinMeetingResult{
		Success:          true,
		Message:          DefaultJoinMessage,
		MeetingTitle:     env.Get("meetingTitle").String(),
		NewMemberCreated: env.Get("newMemberCreated").Bool(),
	}
	if msg := env.Get("message"); msg.Exists() {
		res.Message = msg.String()
	}
	return res
}

// Join-request actions accepted by the service
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// JoinRequestDecision is the PATCH body for approving or rejecting a join request
type JoinRequestDecision struct {
	DiscordUID  string `json:"discordUid"`
	Action      string `json:"action"`
	ProcessedBy string `json:"processedBy"`
	Reason      string `json:"reason,omitempty"`
}
