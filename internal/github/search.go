package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nao1215/wfkit/internal/model"
)

// APIError reports a non-success HTTP status from the search API.
// Any non-2xx response aborts the whole fetch; there is no retry and
// nothing fetched so far is kept.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response.
	StatusCode int

	// URL is the request URL that produced the failure.
	URL string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("github: unexpected status %d from %s", e.StatusCode, e.URL)
}

// searchResponse is the top-level shape of a search API page.
type searchResponse struct {
	// TotalCount is the number of matching repositories across all pages.
	TotalCount int `json:"total_count"`

	// Items holds the repositories on this page.
	Items []searchItem `json:"items"`
}

// searchItem is one repository as returned by the search API.
// Only the fields the catalog needs are decoded.
type searchItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Owner       owner    `json:"owner"`
	HTMLURL     string   `json:"html_url"`
	Stars       int64    `json:"stargazers_count"`
	Topics      []string `json:"topics"`
	Language    string   `json:"language"`
}

// owner is the nested owner object of a search item.
type owner struct {
	Login string `json:"login"`
}

// normalize converts an API item into the catalog record shape.
// Missing topics become an empty slice and a missing language becomes the
// empty string, so the serialized record never carries null fields.
func (i *searchItem) normalize() model.Repo {
	topics := i.Topics
	if topics == nil {
		topics = []string{}
	}

	return model.Repo{
		Description: i.Description,
		Lang:        i.Language,
		Name:        i.Name,
		Owner:       i.Owner.Login,
		Stars:       i.Stars,
		Topics:      topics,
		URL:         i.HTMLURL,
	}
}

// PageCount returns how many pages of size perPage are needed for total
// results, rounding up on any remainder. Zero results means zero pages.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// FetchRepos enumerates every page of results for one topic and returns
// the normalized records in API order.
//
// The page count is derived from the first page's total_count and never
// re-derived; the loop issues strictly sequential requests until the page
// number exceeds it. The first request is always issued, even when it
// turns out there are no results, because it is what reveals the count.
func (c *Client) FetchRepos(ctx context.Context, topic string) (*model.FetchResult, error) {
	result := &model.FetchResult{
		Topic: topic,
		Repos: make([]model.Repo, 0, c.perPage),
	}

	var pageCount int
	pageNum := 1

	for {
		c.logger.Info("fetching page", "topic", topic, "page", pageNum)

		page, err := c.searchPage(ctx, topic, pageNum)
		if err != nil {
			return nil, err
		}

		if pageNum == 1 {
			result.TotalCount = page.TotalCount
			pageCount = PageCount(page.TotalCount, c.perPage)
			c.logger.Info("search results",
				"topic", topic,
				"total", page.TotalCount,
				"pages", pageCount,
			)
		}

		for i := range page.Items {
			result.Repos = append(result.Repos, page.Items[i].normalize())
		}
		result.Pages++

		pageNum++
		if pageNum > pageCount {
			break
		}
	}

	result.FetchedAt = time.Now()

	return result, nil
}

// searchPage fetches and decodes a single page of search results.
func (c *Client) searchPage(ctx context.Context, topic string, pageNum int) (*searchResponse, error) {
	reqURL, err := c.buildURL(topic, pageNum)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: request page %d: %w", pageNum, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("response", "status", resp.StatusCode, "url", reqURL)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("github: decode page %d: %w", pageNum, err)
	}

	return &page, nil
}

// buildURL assembles the search URL for one page.
func (c *Client) buildURL(topic string, pageNum int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("github: parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("per_page", strconv.Itoa(c.perPage))
	q.Set("q", "topic:"+topic)
	q.Set("page", strconv.Itoa(pageNum))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
