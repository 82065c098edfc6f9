package applicantapimodels

import "github.com/pkg/errors"

var errEmptyNote = errors.New("note text is required")
