package handler

import (
	"strings"

	"accounts-service/internal/user/domain"
)

// Payload fields arrive as map[string]any from the transport; each parse
// function below validates one handler-method shape and returns the validated
// values together with the list of violated constraints.

func trimmedString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func phoneString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, len(s) == domain.PhoneLength
}

type createInput struct {
	firstName string
	lastName  string
	phone     string
	password  string
}

func parseCreate(payload map[string]any) (createInput, []string) {
	var in createInput
	var violations []string

	var ok bool
	if in.firstName, ok = trimmedString(payload["firstName"]); !ok {
		violations = append(violations, "firstName must be a non-empty string")
	}
	if in.lastName, ok = trimmedString(payload["lastName"]); !ok {
		violations = append(violations, "lastName must be a non-empty string")
	}
	if in.phone, ok = phoneString(payload["phone"]); !ok {
		violations = append(violations, "phone must be a string of exactly 10 characters")
	}
	if in.password, ok = trimmedString(payload["password"]); !ok {
		violations = append(violations, "password must be a non-empty string")
	}
	if agreed, ok := payload["tosAgreement"].(bool); !ok || !agreed {
		violations = append(violations, "tosAgreement must be true")
	}
	return in, violations
}

func (in createInput) user(digest string) *domain.User {
	return &domain.User{
		FirstName:      in.firstName,
		LastName:       in.lastName,
		Phone:          in.phone,
		HashedPassword: digest,
		TosAgreement:   true,
	}
}

type getInput struct {
	phone string
}

func parseGet(query map[string]string) (getInput, []string) {
	var in getInput
	var violations []string

	var ok bool
	if in.phone, ok = phoneString(query["phone"]); !ok {
		violations = append(violations, "phone must be a string of exactly 10 characters")
	}
	return in, violations
}

type updateInput struct {
	phone     string
	firstName string
	lastName  string
	password  string
}

// parseUpdate requires phone plus at least one updatable field. phone is only
// required to be non-empty here, not length-checked, matching the looser rule
// this operation has always had.
func parseUpdate(payload map[string]any) (updateInput, []string) {
	var in updateInput
	var violations []string

	var ok bool
	if in.phone, ok = trimmedString(payload["phone"]); !ok {
		violations = append(violations, "phone must be a non-empty string")
	}
	in.firstName, _ = trimmedString(payload["firstName"])
	in.lastName, _ = trimmedString(payload["lastName"])
	in.password, _ = trimmedString(payload["password"])
	if in.firstName == "" && in.lastName == "" && in.password == "" {
		violations = append(violations, "at least one of firstName, lastName, password is required")
	}
	return in, violations
}

type deleteInput struct {
	phone string
}

func parseDelete(payload map[string]any) (deleteInput, []string) {
	var in deleteInput
	var violations []string

	var ok bool
	if in.phone, ok = phoneString(payload["phone"]); !ok {
		violations = append(violations, "phone must be a string of exactly 10 characters")
	}
	return in, violations
}
