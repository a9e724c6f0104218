// Package bitbucket is a read-only client for the pull-request REST API
// of a Bitbucket Server/DC instance. It authenticates with HTTP Basic
// auth, walks the paginated dashboard and repository endpoints, and
// decodes the JSON payloads into immutable domain values.
package bitbucket

import "time"

// Person identifies a Bitbucket user on a pull request. Name is the
// identity key: two Persons refer to the same user iff their Names are
// equal, regardless of email or display name.
type Person struct {
	Name         string
	EmailAddress string
	DisplayName  string
}

// Repository identifies a repository by its slug and project key.
type Repository struct {
	Slug       string
	ProjectKey string
}

// ReviewStatus is a reviewer's verdict on a pull request.
type ReviewStatus string

// ReviewStatus values.
const (
	ReviewApproved   ReviewStatus = "APPROVED"
	ReviewUnapproved ReviewStatus = "UNAPPROVED"
	ReviewNeedsWork  ReviewStatus = "NEEDS_WORK"
)

// PullRequestState is the lifecycle state of a pull request.
type PullRequestState string

// PullRequestState values.
const (
	PullRequestOpen     PullRequestState = "OPEN"
	PullRequestDeclined PullRequestState = "DECLINED"
	PullRequestMerged   PullRequestState = "MERGED"
)

// ParticipationType classifies a person's relationship to a pull request.
type ParticipationType string

// ParticipationType values.
const (
	ParticipationAuthor      ParticipationType = "AUTHOR"
	ParticipationReviewer    ParticipationType = "REVIEWER"
	ParticipationParticipant ParticipationType = "PARTICIPANT"
	ParticipationNotOnPR     ParticipationType = "NOT_ON_PR"
)

// Review pairs a reviewer with their current status.
type Review struct {
	Reviewer Person
	Status   ReviewStatus
}

// PullRequest is a decoded pull request. Values are never mutated after
// decoding; callers own the slices and maps.
type PullRequest struct {
	Title        string
	SelfLink     string
	Author       Person
	Reviewers    map[string]Review // keyed by Person.Name, last write wins
	Participants []Person          // order as received, duplicates possible
	State        PullRequestState
	CreatedDate  time.Time
	UpdatedDate  time.Time
	Repository   Repository
}
