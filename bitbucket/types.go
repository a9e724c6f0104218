package bitbucket

// Wire-level records mirroring the Bitbucket Server REST payloads.
// They stay internal to the package; decode.go converts them into the
// exported domain types.

// prPage is the paginated envelope returned by both pull-request
// endpoints.
type prPage struct {
	Size       int        `json:"size"`
	Limit      int        `json:"limit"`
	Start      int        `json:"start"`
	IsLastPage bool       `json:"isLastPage"`
	Values     []prRecord `json:"values"`
}

// prRecord is a single pull request as it appears on the wire.
type prRecord struct {
	Title        string              `json:"title"`
	State        string              `json:"state"`
	CreatedDate  int64               `json:"createdDate"`
	UpdatedDate  int64               `json:"updatedDate"`
	Links        linksRecord         `json:"links"`
	Author       participantRecord   `json:"author"`
	Reviewers    []participantRecord `json:"reviewers"`
	Participants []participantRecord `json:"participants"`
	ToRef        refRecord           `json:"toRef"`
}

type linksRecord struct {
	Self []linkRecord `json:"self"`
}

type linkRecord struct {
	Href string `json:"href"`
}

type participantRecord struct {
	User   userRecord `json:"user"`
	Status string     `json:"status"`
}

type userRecord struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}

type refRecord struct {
	Repository repoRecord `json:"repository"`
}

type repoRecord struct {
	Slug    string        `json:"slug"`
	Project projectRecord `json:"project"`
}

type projectRecord struct {
	Key string `json:"key"`
}

// errorEnvelope is the Bitbucket Server error response format.
type errorEnvelope struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Context       string `json:"context"`
	Message       string `json:"message"`
	ExceptionName string `json:"exceptionName"`
}
