package bitbucket

import (
	"context"
	"fmt"
	"time"
)

// StateFilter restricts a fetch to pull requests in a given state.
type StateFilter string

// StateFilter values accepted by CheckPRState.
const (
	StateAll      StateFilter = "ALL"
	StateOpen     StateFilter = "OPEN"
	StateDeclined StateFilter = "DECLINED"
	StateMerged   StateFilter = "MERGED"
)

// defaultWindow is how far back a fetch reaches when StartDate is unset.
const defaultWindow = 4 * 7 * 24 * time.Hour

// defaultPageSize is the page size requested when PageSize is unset.
const defaultPageSize = 50

// CheckPRState validates a state filter. It is called before any
// request is issued; an unrecognized filter fails the fetch without a
// single network call.
func CheckPRState(state StateFilter) error {
	switch state {
	case StateAll, StateOpen, StateDeclined, StateMerged:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStateFilter, state)
	}
}

// Options controls a pull-request fetch. The zero value fetches ALL
// states updated in the last four weeks, fifty per page.
type Options struct {
	// State filters by pull-request state. Empty means StateAll.
	State StateFilter

	// StartDate is the lower bound of the updated-date window. Zero
	// means Now minus four weeks.
	StartDate time.Time

	// EndDate is the upper bound of the updated-date window. Zero
	// means Now.
	EndDate time.Time

	// FetchAll disables the date-based early stop and the window
	// post-filter: every page is fetched until the server reports the
	// last one, and the full accumulation is returned.
	FetchAll bool

	// PageSize is the limit query parameter. Zero means 50.
	PageSize int

	// Now supplies the current time for the window defaults and the
	// pagination cursor. Nil means time.Now.
	Now func() time.Time
}

// FetchUserPullRequests fetches the authenticated user's dashboard pull
// requests across all repositories. The state query parameter is only
// sent when the filter is narrower than ALL; the dashboard endpoint
// treats an absent state as no filter.
func (c *Client) FetchUserPullRequests(ctx context.Context, opts Options) ([]PullRequest, error) {
	return c.fetchPullRequests(
		ctx,
		"/rest/api/latest/dashboard/pull-requests",
		false,
		opts,
	)
}

// FetchRepoPullRequests fetches the pull requests of a single
// repository. Unlike the dashboard endpoint, the repository endpoint is
// always sent an explicit state, including ALL.
func (c *Client) FetchRepoPullRequests(ctx context.Context, repo Repository, opts Options) ([]PullRequest, error) {
	path := fmt.Sprintf(
		"/rest/api/latest/projects/%s/repos/%s/pull-requests",
		repo.ProjectKey, repo.Slug,
	)
	return c.fetchPullRequests(ctx, path, true, opts)
}

// fetchPullRequests is the pagination loop shared by both entry points.
//
// The server returns pages sorted by descending updated date, so once a
// page ends older than StartDate no later page can be in the window and
// the loop stops early. FetchAll bypasses both the early stop and the
// window post-filter. Any transport or decode error discards everything
// accumulated so far.
func (c *Client) fetchPullRequests(
	ctx context.Context,
	basePath string,
	alwaysSendState bool,
	opts Options,
) ([]PullRequest, error) {
	state := opts.State
	if state == "" {
		state = StateAll
	}
	if err := CheckPRState(state); err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	startDate := opts.StartDate
	if startDate.IsZero() {
		startDate = now().Add(-defaultWindow)
	}
	endDate := opts.EndDate
	if endDate.IsZero() {
		endDate = now()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var all []PullRequest
	cursor := 0
	lastUpdated := now()
	morePages := true

	for (lastUpdated.After(startDate) || opts.FetchAll) && morePages {
		path := fmt.Sprintf("%s?start=%d&limit=%d", basePath, cursor, pageSize)
		if alwaysSendState || state != StateAll {
			path += "&state=" + string(state)
		}

		var page prPage
		if err := c.get(ctx, path, &page); err != nil {
			return nil, fmt.Errorf("fetching pull requests: %w", err)
		}

		for _, rec := range page.Values {
			pr, err := decodePullRequest(rec)
			if err != nil {
				return nil, fmt.Errorf("decoding page at start=%d: %w", cursor, err)
			}
			all = append(all, pr)
		}

		morePages = !page.IsLastPage
		if len(all) > 0 {
			lastUpdated = all[len(all)-1].UpdatedDate
		}
		cursor += pageSize
	}

	if opts.FetchAll {
		return all, nil
	}

	inWindow := make([]PullRequest, 0, len(all))
	for _, pr := range all {
		if pr.UpdatedDate.After(startDate) && pr.UpdatedDate.Before(endDate) {
			inWindow = append(inWindow, pr)
		}
	}
	return inWindow, nil
}
