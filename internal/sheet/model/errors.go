package model

import "errors"

// Domain errors. Their text is returned as the response message.
var (
	ErrUnknownAction      = errors.New("unknown action")
	ErrNotFound           = errors.New("record not found")
	ErrNameRequired       = errors.New("name is required")
	ErrTeamRequired       = errors.New("team is required")
	ErrTeamsRequired      = errors.New("both teams are required")
	ErrTitleRequired      = errors.New("title is required")
	ErrCommentIncomplete  = errors.New("author name and text are required")
	ErrBlogNotFound       = errors.New("blog post not found")
	ErrCredentials        = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrAdminExists        = errors.New("an admin with this email already exists")
	ErrAdminIncomplete    = errors.New("name, email and password are required")
	ErrLastAdmin          = errors.New("cannot delete the last admin")
	ErrPasswordRequired   = errors.New("new password is required")
	ErrStandingIncomplete = errors.New("team and category are required")
)

// InvalidImageMarker is stored in place of a photo URL when an upload
// cannot be decoded.
const InvalidImageMarker = "Error: invalid image payload"

var domainErrors = []error{
	ErrUnknownAction,
	ErrNotFound,
	ErrNameRequired,
	ErrTeamRequired,
	ErrTeamsRequired,
	ErrTitleRequired,
	ErrCommentIncomplete,
	ErrBlogNotFound,
	ErrCredentials,
	ErrIncorrectPassword,
	ErrAdminExists,
	ErrAdminIncomplete,
	ErrLastAdmin,
	ErrPasswordRequired,
	ErrStandingIncomplete,
}

// IsDomain reports whether err is a domain failure whose text can be shown
// to the caller.
func IsDomain(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
