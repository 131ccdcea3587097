package insight

import "errors"

var (
	ErrMissingReturnURL       = errors.New("return_url is required")
	ErrInvalidReturnURL       = errors.New("return_url must be an absolute http(s) URL")
	ErrMissingRepository      = errors.New("repository owner and name are required")
	ErrMissingRequiredSetting = errors.New("required setting has no value")
	ErrBusy                   = errors.New("too many pending reports, retry later")
)
