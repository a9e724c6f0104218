package bitbucket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func person(name string) Person {
	return Person{Name: name, EmailAddress: "N/A", DisplayName: name}
}

func TestRoleOfPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		pr       PullRequest
		who      string
		expected ParticipationType
	}{
		{
			name: "reviewer beats author",
			pr: PullRequest{
				Author: person("alice"),
				Reviewers: map[string]Review{
					"alice": {Reviewer: person("alice"), Status: ReviewApproved},
				},
			},
			who:      "alice",
			expected: ParticipationReviewer,
		},
		{
			name: "participant beats author",
			pr: PullRequest{
				Author:       person("alice"),
				Participants: []Person{person("alice")},
			},
			who:      "alice",
			expected: ParticipationParticipant,
		},
		{
			name: "plain author",
			pr: PullRequest{
				Author:       person("alice"),
				Participants: []Person{person("bob")},
			},
			who:      "alice",
			expected: ParticipationAuthor,
		},
		{
			name: "not on the pull request",
			pr: PullRequest{
				Author: person("alice"),
			},
			who:      "mallory",
			expected: ParticipationNotOnPR,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.pr.RoleOf(tc.who))
			require.Equal(t, tc.expected, tc.pr.RoleOfPerson(person(tc.who)))
		})
	}
}

func TestPeople(t *testing.T) {
	pr := PullRequest{
		Author: person("alice"),
		Reviewers: map[string]Review{
			"bob": {Reviewer: person("bob"), Status: ReviewNeedsWork},
		},
		Participants: []Person{person("carol"), person("carol")},
	}

	people := pr.People()

	require.Len(t, people, 4)
	require.Contains(t, people, person("bob"))
	require.Contains(t, people, person("carol"))
	// The author comes last, after reviewers and participants.
	require.Equal(t, person("alice"), people[len(people)-1])
}
