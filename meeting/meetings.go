package meeting

import (
	"context"

	corehttp "github.com/kochabx/meetclient/core/net/http"
)

// Route templates of the meeting service
const (
	RouteLatestActive    = "/api/meeting-requests/latest-active"
	RouteLatestConfirmed = "/api/meeting-requests/latest-confirmed"
	RouteMeetingRequests = "/api/meeting-requests"
	RouteMeetingRequest  = "/api/meeting-requests/{id}"
	RouteJoinRequests    = "/api/meeting-requests/{id}/join-requests"
	RouteSelectHoster    = "/api/meeting-requests/{id}/select-hoster"
	RouteDirectMessage   = "/api/discord/dm"
	RouteJoinMeeting     = "/api/discord/join-meeting"
)

// meetingPath substitutes id into a meeting-scoped route without escaping
func meetingPath(id, suffix string) string {
	return RouteMeetingRequests + "/" + id + suffix
}

// GetLatestActiveMeeting returns the newest meeting that is neither confirmed nor cancelled
func (c *Client) GetLatestActiveMeeting(ctx context.Context) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteLatestActive, RouteLatestActive, nil)
}

// GetLatestConfirmedMeeting returns the newest confirmed meeting
func (c *Client) GetLatestConfirmedMeeting(ctx context.Context) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteLatestConfirmed, RouteLatestConfirmed, nil)
}

// GetMeetingRequests lists all meeting requests
func (c *Client) GetMeetingRequests(ctx context.Context) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteMeetingRequests, RouteMeetingRequests, nil)
}

// GetMeetingRequest returns one meeting request
func (c *Client) GetMeetingRequest(ctx context.Context, meetingID string) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteMeetingRequest, meetingPath(meetingID, ""), nil)
}

// GetJoinRequests lists the join requests of a meeting
func (c *Client) GetJoinRequests(ctx context.Context, meetingID string) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteJoinRequests, meetingPath(meetingID, "/join-requests"), nil)
}

// ApproveJoinRequest approves uid's pending request. An empty reason is omitted.
func (c *Client) ApproveJoinRequest(ctx context.Context, meetingID, uid, processedBy, reason string) (Envelope, error) {
	return c.decideJoinRequest(ctx, meetingID, JoinRequestDecision{
		DiscordUID:  uid,
		Action:      ActionApprove,
		ProcessedBy: processedBy,
		Reason:      reason,
	})
}

// RejectJoinRequest rejects uid's pending request. An empty reason is omitted.
func (c *Client) RejectJoinRequest(ctx context.Context, meetingID, uid, processedBy, reason string) (Envelope, error) {
	return c.decideJoinRequest(ctx, meetingID, JoinRequestDecision{
		DiscordUID:  uid,
		Action:      ActionReject,
		ProcessedBy: processedBy,
		Reason:      reason,
	})
}

func (c *Client) decideJoinRequest(ctx context.Context, meetingID string, d JoinRequestDecision) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodPatch, RouteJoinRequests, meetingPath(meetingID, "/join-requests"), d)
}

type directMessage struct {
	DiscordUID string `json:"discordUid"`
	Message    string `json:"message"`
}

// SendDM asks the service to deliver a Discord direct message to uid
func (c *Client) SendDM(ctx context.Context, uid, message string) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodPost, RouteDirectMessage, RouteDirectMessage, directMessage{
		DiscordUID: uid,
		Message:    message,
	})
}

// SelectHoster asks the service to pick a hoster for the meeting. The
// selection is made server-side; an already selected hoster is returned as is.
func (c *Client) SelectHoster(ctx context.Context, meetingID string) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodPost, RouteSelectHoster, meetingPath(meetingID, "/select-hoster"), nil)
}

// GetHoster returns the current hoster of the meeting
func (c *Client) GetHoster(ctx context.Context, meetingID string) (Envelope, error) {
	return c.dispatch(ctx, corehttp.MethodGet, RouteSelectHoster, meetingPath(meetingID, "/select-hoster"), nil)
}

// SelectHosterForLatestConfirmed selects a hoster for the newest confirmed
// meeting. A failed lookup is returned unchanged and nothing else is sent; a
// failed selection after a successful lookup is reported without compensation.
func (c *Client) SelectHosterForLatestConfirmed(ctx context.Context) (Envelope, error) {
	latest, err := c.GetLatestConfirmedMeeting(ctx)
	if err != nil || !latest.Success {
		return latest, err
	}

	id := recordID(latest)
	if id == "" {
		return Fail("latest confirmed meeting has no identifier"), nil
	}
	return c.SelectHoster(ctx, id)
}

// recordID reads the record identifier, accepting both a bare record and the
// {"success":..,"data":{..}} wrapper the service returns
func recordID(env Envelope) string {
	for _, path := range []string{"_id", "data._id"} {
		if id := env.Get(path); id.Exists() && id.String() != "" {
			return id.String()
		}
	}
	return ""
}
