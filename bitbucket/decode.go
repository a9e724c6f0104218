package bitbucket

import (
	"fmt"
	"time"
)

// emailUnknown is the sentinel stored when the server omits a user's
// email address.
const emailUnknown = "N/A"

// ParseReviewStatus maps a reviewer status string to a ReviewStatus.
// The server only ever sends APPROVED, UNAPPROVED, or NEEDS_WORK, so
// dispatching on the first character is sufficient.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty status", ErrInvalidReviewStatus)
	}
	switch s[0] {
	case 'A':
		return ReviewApproved, nil
	case 'U':
		return ReviewUnapproved, nil
	case 'N':
		return ReviewNeedsWork, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidReviewStatus, s)
	}
}

// ParsePullRequestState is the strict state parse: exactly OPEN,
// DECLINED, or MERGED, anything else is an error.
func ParsePullRequestState(s string) (PullRequestState, error) {
	switch s {
	case "OPEN":
		return PullRequestOpen, nil
	case "DECLINED":
		return PullRequestDeclined, nil
	case "MERGED":
		return PullRequestMerged, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPullRequestState, s)
	}
}

// LookupPullRequestState is the lenient variant of
// ParsePullRequestState: unrecognized strings yield ok=false instead of
// an error.
func LookupPullRequestState(s string) (PullRequestState, bool) {
	state, err := ParsePullRequestState(s)
	if err != nil {
		return "", false
	}
	return state, true
}

// decodePerson converts a wire user record. Name is required; a missing
// email is replaced with the "N/A" sentinel and never fails.
func decodePerson(u userRecord) (Person, error) {
	if u.Name == "" {
		return Person{}, fmt.Errorf("user record missing name")
	}
	email := u.EmailAddress
	if email == "" {
		email = emailUnknown
	}
	return Person{
		Name:         u.Name,
		EmailAddress: email,
		DisplayName:  u.DisplayName,
	}, nil
}

// decodeReviewers builds the reviewers map keyed by Person.Name. If the
// server repeats a reviewer, the last entry wins.
func decodeReviewers(records []participantRecord) (map[string]Review, error) {
	reviewers := make(map[string]Review, len(records))
	for _, rec := range records {
		person, err := decodePerson(rec.User)
		if err != nil {
			return nil, fmt.Errorf("decoding reviewer: %w", err)
		}
		status, err := ParseReviewStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("decoding reviewer %s: %w", person.Name, err)
		}
		reviewers[person.Name] = Review{Reviewer: person, Status: status}
	}
	return reviewers, nil
}

// decodeParticipants preserves the server's ordering and any duplicates.
func decodeParticipants(records []participantRecord) ([]Person, error) {
	participants := make([]Person, 0, len(records))
	for _, rec := range records {
		person, err := decodePerson(rec.User)
		if err != nil {
			return nil, fmt.Errorf("decoding participant: %w", err)
		}
		participants = append(participants, person)
	}
	return participants, nil
}

// decodeRepository reads the target repository out of the toRef block.
func decodeRepository(ref refRecord) (Repository, error) {
	if ref.Repository.Slug == "" {
		return Repository{}, fmt.Errorf("toRef missing repository slug")
	}
	if ref.Repository.Project.Key == "" {
		return Repository{}, fmt.Errorf("toRef missing project key")
	}
	return Repository{
		Slug:       ref.Repository.Slug,
		ProjectKey: ref.Repository.Project.Key,
	}, nil
}

// epochMsToTime converts an epoch-millisecond timestamp to a time.Time
// at second precision.
func epochMsToTime(ms int64) time.Time {
	return time.Unix(ms/1000, 0)
}

// decodePullRequest assembles a full PullRequest from one wire record.
// Any missing required field or bad enum value fails the whole record,
// which in turn fails the whole page.
func decodePullRequest(rec prRecord) (PullRequest, error) {
	if rec.Title == "" {
		return PullRequest{}, fmt.Errorf("pull request missing title")
	}
	if len(rec.Links.Self) == 0 || rec.Links.Self[0].Href == "" {
		return PullRequest{}, fmt.Errorf(
			"pull request %q missing self link", rec.Title,
		)
	}

	author, err := decodePerson(rec.Author.User)
	if err != nil {
		return PullRequest{}, fmt.Errorf(
			"pull request %q: decoding author: %w", rec.Title, err,
		)
	}

	reviewers, err := decodeReviewers(rec.Reviewers)
	if err != nil {
		return PullRequest{}, fmt.Errorf("pull request %q: %w", rec.Title, err)
	}

	participants, err := decodeParticipants(rec.Participants)
	if err != nil {
		return PullRequest{}, fmt.Errorf("pull request %q: %w", rec.Title, err)
	}

	state, err := ParsePullRequestState(rec.State)
	if err != nil {
		return PullRequest{}, fmt.Errorf("pull request %q: %w", rec.Title, err)
	}

	repo, err := decodeRepository(rec.ToRef)
	if err != nil {
		return PullRequest{}, fmt.Errorf("pull request %q: %w", rec.Title, err)
	}

	return PullRequest{
		Title:        rec.Title,
		SelfLink:     rec.Links.Self[0].Href,
		Author:       author,
		Reviewers:    reviewers,
		Participants: participants,
		State:        state,
		CreatedDate:  epochMsToTime(rec.CreatedDate),
		UpdatedDate:  epochMsToTime(rec.UpdatedDate),
		Repository:   repo,
	}, nil
}
