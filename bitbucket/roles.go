package bitbucket

// RoleOf classifies the named user's relationship to the pull request.
// Membership is checked in a fixed priority order: reviewers, then
// participants, then the author. A user who is both author and
// participant is therefore reported as PARTICIPANT.
func (pr PullRequest) RoleOf(name string) ParticipationType {
	if _, ok := pr.Reviewers[name]; ok {
		return ParticipationReviewer
	}
	for _, p := range pr.Participants {
		if p.Name == name {
			return ParticipationParticipant
		}
	}
	if pr.Author.Name == name {
		return ParticipationAuthor
	}
	return ParticipationNotOnPR
}

// RoleOfPerson is RoleOf keyed by the person's Name.
func (pr PullRequest) RoleOfPerson(p Person) ParticipationType {
	return pr.RoleOf(p.Name)
}

// People returns everyone on the pull request: reviewers first, then
// participants in received order, then the author. Reviewer order is
// unspecified since reviewers are stored in a map.
func (pr PullRequest) People() []Person {
	people := make([]Person, 0, len(pr.Reviewers)+len(pr.Participants)+1)
	for _, r := range pr.Reviewers {
		people = append(people, r.Reviewer)
	}
	people = append(people, pr.Participants...)
	people = append(people, pr.Author)
	return people
}
