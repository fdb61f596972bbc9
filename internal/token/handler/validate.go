package handler

import (
	"strings"

	"accounts-service/internal/security"
	"accounts-service/internal/user/domain"
)

func trimmedString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func tokenIDString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, len(s) == security.TokenIDLength
}

type issueInput struct {
	phone    string
	password string
}

func parseIssue(payload map[string]any) (issueInput, []string) {
	var in issueInput
	var violations []string

	var ok bool
	if in.phone, ok = trimmedString(payload["phone"]); !ok || len(in.phone) != domain.PhoneLength {
		violations = append(violations, "phone must be a string of exactly 10 characters")
	}
	if in.password, ok = trimmedString(payload["password"]); !ok {
		violations = append(violations, "password must be a non-empty string")
	}
	return in, violations
}

type getInput struct {
	id string
}

func parseGet(query map[string]string) (getInput, []string) {
	var in getInput
	var violations []string

	var ok bool
	if in.id, ok = tokenIDString(query["id"]); !ok {
		violations = append(violations, "id must be a string of exactly 20 characters")
	}
	return in, violations
}

type extendInput struct {
	id string
}

func parseExtend(payload map[string]any) (extendInput, []string) {
	var in extendInput
	var violations []string

	var ok bool
	if in.id, ok = tokenIDString(payload["id"]); !ok {
		violations = append(violations, "id must be a string of exactly 20 characters")
	}
	if extend, ok := payload["extend"].(bool); !ok || !extend {
		violations = append(violations, "extend must be true")
	}
	return in, violations
}

type deleteInput struct {
	id string
}

func parseDelete(payload map[string]any) (deleteInput, []string) {
	var in deleteInput
	var violations []string

	var ok bool
	if in.id, ok = tokenIDString(payload["id"]); !ok {
		violations = append(violations, "id must be a string of exactly 20 characters")
	}
	return in, violations
}
