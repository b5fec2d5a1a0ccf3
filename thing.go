package bgg

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// rateLimitMessage is the exact message text the API answers with while
// throttling. Anything else in the message field is fatal.
const rateLimitMessage = "Rate limit exceeded."

// suggestedPlayersPoll names the poll holding player-count votes.
const suggestedPlayersPoll = "suggested_numplayers"

// FetchPlayerCountStats retrieves the voted player-count suitability
// and complexity weight for one game.
//
// The API signals throttling in-band: a well-formed 200 response whose
// body carries a message element instead of the poll data. In that case
// the fetch pauses for the configured retry delay and starts over, with
// no attempt cap; the rate limiter's bucket eventually drains. Any
// other message is an UpstreamError carrying the raw body.
func (c *Client) FetchPlayerCountStats(ctx context.Context, id string) (*PlayerCountStats, error) {
	url := fmt.Sprintf("%s/thing?id=%s&stats=1", c.apiURL, id)

	for {
		body, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}

		var resp xmlThing
		if err := xml.Unmarshal(body, &resp); err != nil {
			return nil, newParseError("failed to parse thing response", err)
		}

		poll := findSuggestedPlayersPoll(resp.Items)
		if poll == nil {
			msg := upstreamMessage(resp, body)
			if msg != rateLimitMessage {
				return nil, &UpstreamError{Message: msg, Body: body}
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
			continue
		}

		return buildStats(resp.Items[0], poll)
	}
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, newNetworkError("request failed", 0, err)
	}
	if resp.StatusCode() != 200 {
		return nil, newNetworkError(
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode()),
			resp.StatusCode(), nil)
	}
	return resp.Body(), nil
}

// findSuggestedPlayersPoll locates the player-count poll in the first
// returned item, or nil when the response holds no such poll.
func findSuggestedPlayersPoll(items []xmlThingItem) *xmlPoll {
	if len(items) == 0 {
		return nil
	}
	for i := range items[0].Polls {
		if items[0].Polls[i].Name == suggestedPlayersPoll {
			return &items[0].Polls[i]
		}
	}
	return nil
}

// upstreamMessage extracts the message text from a poll-less response,
// accepting both a message child element and a message root element.
func upstreamMessage(resp xmlThing, body []byte) string {
	if resp.Message != "" {
		return strings.TrimSpace(resp.Message)
	}
	var m xmlMessage
	if err := xml.Unmarshal(body, &m); err == nil {
		return strings.TrimSpace(m.Text)
	}
	return ""
}

// buildStats converts a thing item into PlayerCountStats.
func buildStats(item xmlThingItem, poll *xmlPoll) (*PlayerCountStats, error) {
	weightAttr := item.Statistics.Ratings.AverageWeight.Value
	weight, err := strconv.ParseFloat(weightAttr, 64)
	if err != nil {
		return nil, newParseError("invalid averageweight value "+strconv.Quote(weightAttr), err)
	}

	stats := &PlayerCountStats{Weight: weight}
	for _, entry := range poll.Results {
		lower, open, err := parseCountDescriptor(entry.NumPlayers)
		if err != nil {
			return nil, err
		}

		tally := make(VoteTally, len(entry.Results))
		for _, result := range entry.Results {
			tally[result.Value] = result.NumVotes
		}

		class, err := Classify(tally)
		if err != nil {
			return nil, err
		}
		switch class {
		case Best:
			stats.Best.add(lower, open)
		case Recommended:
			stats.Recommended.add(lower, open)
		}
	}
	return stats, nil
}
