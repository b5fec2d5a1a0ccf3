package bgg

import "encoding/xml"

// XML structures for parsing BGG API responses.
// These are internal types used for XML parsing.

// xmlThing is the root element for thing (game detail) responses. The
// message element appears instead of items when the API rejects a
// request, most notably on rate limiting.
type xmlThing struct {
	Message string         `xml:"message"`
	Items   []xmlThingItem `xml:"item"`
}

// xmlThingItem represents a detailed game item, reduced to the poll and
// statistics data the stats fetcher consumes.
type xmlThingItem struct {
	ID         string        `xml:"id,attr"`
	Polls      []xmlPoll     `xml:"poll"`
	Statistics xmlStatistics `xml:"statistics"`
}

// xmlPoll represents a poll element.
type xmlPoll struct {
	Name       string           `xml:"name,attr"`
	Title      string           `xml:"title,attr"`
	TotalVotes int              `xml:"totalvotes,attr"`
	Results    []xmlPollResults `xml:"results"`
}

// xmlPollResults represents results for a specific option (e.g. player count).
type xmlPollResults struct {
	NumPlayers string          `xml:"numplayers,attr"`
	Results    []xmlPollResult `xml:"result"`
}

// xmlPollResult represents a single result entry in a poll.
type xmlPollResult struct {
	Value    string `xml:"value,attr"`
	NumVotes int    `xml:"numvotes,attr"`
}

// xmlStatistics contains game statistics.
type xmlStatistics struct {
	Ratings xmlRatings `xml:"ratings"`
}

// xmlRatings contains rating information. The averageweight value stays
// a string so a malformed number surfaces as an explicit parse error.
type xmlRatings struct {
	AverageWeight xmlValue `xml:"averageweight"`
}

// xmlValue represents an element with a value attribute.
type xmlValue struct {
	Value string `xml:"value,attr"`
}

// xmlMessage matches a response whose root element is the message
// itself, the other shape the throttled API has been seen to answer.
type xmlMessage struct {
	XMLName xml.Name `xml:"message"`
	Text    string   `xml:",chardata"`
}
