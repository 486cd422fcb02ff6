package ui

import (
	"strconv"
	"strings"

	"dwex-demo/internal/domain"
)

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

func formBool(values map[string][]string, key string) bool {
	v := strings.ToLower(formString(values, key))
	return v == "true" || v == "1" || v == "on" || v == "yes"
}

func formInt(values map[string][]string, key string) (int, error) {
	v := formString(values, key)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.ErrValidation("%s must be an integer", key)
	}
	return n, nil
}

func formFloat(values map[string][]string, key string) (float64, error) {
	v := formString(values, key)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, domain.ErrValidation("%s must be a number", key)
	}
	return f, nil
}

// formRoute reads a route field; routes are absolute paths.
func formRoute(values map[string][]string, key string) (string, error) {
	v := formString(values, key)
	if !isLocalPath(v) {
		return "", domain.ErrValidation("%s must be an absolute path", key)
	}
	return v, nil
}

// formOrientation reads an orientation, defaulting to vertical when absent.
func formOrientation(values map[string][]string, key string) (domain.SplitOrientation, error) {
	v := formString(values, key)
	if v == "" {
		return domain.SplitVertical, nil
	}
	o, ok := domain.ParseSplitOrientation(v)
	if !ok {
		return "", domain.ErrValidation("unknown orientation %q", v)
	}
	return o, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
