package bgg

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchRankedPage retrieves one page of the ranked game listing and
// parses it into RankedGame rows, in the rank order of the page.
//
// The listing is an HTML table: a header row followed by one row per
// game. A page that does not match that shape is a broken structure
// contract and yields a ParseError, never a silently shortened result.
func (c *Client) FetchRankedPage(ctx context.Context, page int) ([]RankedGame, error) {
	url := fmt.Sprintf("%s/page/%d", c.browseURL, page)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, newParseError("failed to parse listing page", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, newParseError("listing page has no table", nil)
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil, newParseError("listing table has no rows", nil)
	}

	var games []RankedGame
	var rowErr error
	rows.Slice(1, goquery.ToEnd).EachWithBreak(func(i int, row *goquery.Selection) bool {
		game, err := parseListingRow(row)
		if err != nil {
			rowErr = fmt.Errorf("listing page %d row %d: %w", page, i+1, err)
			return false
		}
		games = append(games, game)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return games, nil
}

// parseListingRow extracts one RankedGame from a listing table row.
func parseListingRow(row *goquery.Selection) (RankedGame, error) {
	rankCell := row.Find("td.collection_rank").First()
	if rankCell.Length() == 0 {
		return RankedGame{}, newParseError("row has no rank cell", nil)
	}

	link := row.Find("a.primary").First()
	if link.Length() == 0 {
		return RankedGame{}, newParseError("row has no primary link", nil)
	}
	href, ok := link.Attr("href")
	if !ok {
		return RankedGame{}, newParseError("primary link has no href", nil)
	}

	id, err := gameIDFromHref(href)
	if err != nil {
		return RankedGame{}, err
	}

	return RankedGame{
		Rank: strings.TrimSpace(rankCell.Text()),
		Name: strings.TrimSpace(link.Text()),
		Year: stripBrackets(row.Find("span").First().Text()),
		ID:   id,
	}, nil
}

// gameIDFromHref extracts the numeric id segment from a game link of
// the form /boardgame/{id}/{slug}.
func gameIDFromHref(href string) (string, error) {
	parts := strings.Split(href, "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", newParseError("primary link href has no id segment: "+href, nil)
	}
	return parts[2], nil
}

// stripBrackets removes the single surrounding bracket characters from
// a year span such as "(2017)". An empty string stays empty, matching
// games with no published year.
func stripBrackets(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
