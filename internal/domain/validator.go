package domain

import "errors"

type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(req *RunRequest) error {
	if len(req.Command) == 0 {
		return errors.New("command cannot be empty")
	}

	switch req.Format {
	case FormatPretty, FormatPosix, FormatGnu, FormatDelimited:
	default:
		return errors.New("unknown output format")
	}

	if req.Format == FormatDelimited && req.Delimiter == "" {
		return errors.New("no delimiter given")
	}

	return nil
}
