package service

import (
	"encoding/json"
	"strings"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
)

// allowedImageSuffixes is the case-sensitive set of accepted image file
// extensions for the task image field.
var allowedImageSuffixes = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"svg":  true,
}

// ParseIDSet normalizes an id-or-list request parameter. The field accepts
// either a scalar id or a list of ids; inside a list, non-numeric entries
// are silently dropped, while a non-numeric scalar is a hard error. The
// asymmetry is part of the request contract. Returns the deduplicated ids
// in submission order and whether the field was present at all.
func ParseIDSet(raw json.RawMessage) ([]uint, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false, nil
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, true, apperrors.ErrInvalidParameters
	}

	switch v := value.(type) {
	case float64:
		id, ok := toID(v)
		if !ok {
			return nil, true, apperrors.ErrInvalidParameters
		}
		return []uint{id}, true, nil
	case []interface{}:
		ids := make([]uint, 0, len(v))
		seen := make(map[uint]bool, len(v))
		for _, entry := range v {
			num, ok := entry.(float64)
			if !ok {
				continue // drop non-numeric list entries
			}
			id, ok := toID(num)
			if !ok {
				continue
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		return ids, true, nil
	default:
		return nil, true, apperrors.ErrInvalidParameters
	}
}

// toID converts a JSON number into an id, rejecting negatives and fractions
func toID(v float64) (uint, bool) {
	if v < 0 || v != float64(uint(v)) {
		return 0, false
	}
	return uint(v), true
}

// ValidateMaxPoints rejects point values outside [MinTaskPoints, MaxTaskPoints]
func ValidateMaxPoints(points int) error {
	if points < models.MinTaskPoints || points > models.MaxTaskPoints {
		return apperrors.ErrInvalidTaskDetails
	}
	return nil
}

// ClampTaskType saturates a raw type value into the valid enum range.
// Out-of-range input is not an error.
func ClampTaskType(value int) models.TaskType {
	if value < 0 {
		return 0
	}
	if models.TaskType(value) > models.MaxTaskType {
		return models.MaxTaskType
	}
	return models.TaskType(value)
}

// ClampTaskCategory saturates a raw category value into the valid enum range
func ClampTaskCategory(value int) models.TaskCategory {
	if value < 0 {
		return 0
	}
	if models.TaskCategory(value) > models.MaxTaskCategory {
		return models.MaxTaskCategory
	}
	return models.TaskCategory(value)
}

// NormalizeAssetField extracts a string from a raw JSON field. A missing
// field reports present=false; a field holding anything other than a JSON
// string is cleared rather than rejected.
func NormalizeAssetField(raw json.RawMessage) (value string, present bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true // not string-like: clear instead of erroring
	}
	return s, true
}

// ValidateImageURL checks the image field: when non-empty it must carry a
// case-sensitive suffix from the allowed image extension set.
func ValidateImageURL(image string) error {
	if image == "" {
		return nil
	}
	suffix, ok := urlSuffix(image)
	if !ok || !allowedImageSuffixes[suffix] {
		return apperrors.ErrInvalidImageURL
	}
	return nil
}

// ValidateTaskURL checks the url field: when non-empty its suffix must be
// exactly "html".
func ValidateTaskURL(url string) error {
	if url == "" {
		return nil
	}
	suffix, ok := urlSuffix(url)
	if !ok || suffix != "html" {
		return apperrors.ErrInvalidTaskURL
	}
	return nil
}

// urlSuffix returns the text after the last "." and whether a "." exists
func urlSuffix(s string) (string, bool) {
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return "", false
	}
	return s[idx+1:], true
}
