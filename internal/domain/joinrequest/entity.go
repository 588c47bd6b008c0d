package joinrequest

import "time"

// JoinRequest is an unapproved employee application. It is deleted on
// approval (after the user is created) or rejection; only employees go
// through this flow, admins register directly.
type JoinRequest struct {
	ID          string
	Name        string
	Email       string
	RequestDate time.Time
}
