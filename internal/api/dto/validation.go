package dto

import (
	"net/mail"
	"sort"
	"strings"

	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// fieldErrors collects per-field validation problems.
type fieldErrors map[string]any

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "required"
	}
}

func (f fieldErrors) notBlank(field string, value string, present bool) {
	if present && strings.TrimSpace(value) == "" {
		f[field] = "must not be blank"
	}
}

func (f fieldErrors) email(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "required"
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		f[field] = "invalid email address"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	fields := make([]string, 0, len(f))
	for field, problem := range f {
		fields = append(fields, field+" "+problem.(string))
	}
	sort.Strings(fields)
	return apperrors.NewValidationError("invalid request: "+strings.Join(fields, ", "), map[string]any(f))
}
