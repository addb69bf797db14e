package model

import "errors"

var (
	// ErrNameRequired indicates that a tournament, team or admin has no name.
	ErrNameRequired = errors.New("name is required")
	// ErrTitleRequired indicates that a blog post has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrNoTeamSelected indicates that a player has no team.
	ErrNoTeamSelected = errors.New("please select a team")
	// ErrTeamNotFound indicates that a referenced team is not loaded.
	ErrTeamNotFound = errors.New("selected team details not found")
	// ErrTournamentRequired indicates that a new match has no tournament.
	ErrTournamentRequired = errors.New("tournament is required")
	// ErrTournamentNotFound indicates that a referenced tournament is not loaded.
	ErrTournamentNotFound = errors.New("selected tournament not found")
	// ErrTeamsRequired indicates that a new match is missing a side.
	ErrTeamsRequired = errors.New("both teams are required")
	// ErrSameTeams indicates that both match sides reference the same team.
	ErrSameTeams = errors.New("a team cannot play itself")
	// ErrMatchDateRequired indicates that a match has no date.
	ErrMatchDateRequired = errors.New("match date is required")
	// ErrInvalidJerseyNumber indicates a negative jersey number.
	ErrInvalidJerseyNumber = errors.New("jersey number cannot be negative")
	// ErrEmailRequired indicates a missing admin email.
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordRequired indicates a missing password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrPasswordMismatch indicates that the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrAuthorRequired indicates a comment without an author.
	ErrAuthorRequired = errors.New("author name is required")
	// ErrTextRequired indicates an empty comment.
	ErrTextRequired = errors.New("comment text is required")
	// ErrIDRequired indicates a delete without an id.
	ErrIDRequired = errors.New("id is required")
	// ErrBlogRequired indicates a comment without a parent blog post.
	ErrBlogRequired = errors.New("blog post is required")
)

var validationErrors = []error{
	ErrNameRequired,
	ErrTitleRequired,
	ErrNoTeamSelected,
	ErrTeamNotFound,
	ErrTournamentRequired,
	ErrTournamentNotFound,
	ErrTeamsRequired,
	ErrSameTeams,
	ErrMatchDateRequired,
	ErrInvalidJerseyNumber,
	ErrEmailRequired,
	ErrPasswordRequired,
	ErrPasswordMismatch,
	ErrAuthorRequired,
	ErrTextRequired,
	ErrIDRequired,
	ErrBlogRequired,
}

// IsValidation reports whether err is a pre-flight validation failure,
// which is raised before anything is sent to the backend.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
