package reminder

import "errors"

var ErrNotAuthorized = errors.New("notifications are not enabled")
