package service_test

import (
	"encoding/json"
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestParseIDSet(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectIDs   []uint
		expectGiven bool
		expectErr   error
	}{
		{"Absent field", "", nil, false, nil},
		{"Null field", "null", nil, false, nil},
		{"Scalar id", "7", []uint{7}, true, nil},
		{"Scalar zero", "0", []uint{0}, true, nil},
		{"Scalar string is hard error", `"7"`, nil, true, apperrors.ErrInvalidParameters},
		{"Scalar negative is hard error", "-3", nil, true, apperrors.ErrInvalidParameters},
		{"Scalar fraction is hard error", "2.5", nil, true, apperrors.ErrInvalidParameters},
		{"Object is hard error", `{"id":1}`, nil, true, apperrors.ErrInvalidParameters},
		{"List of ids", "[1,2,3]", []uint{1, 2, 3}, true, nil},
		{"List drops non-numeric entries", `[1,"two",3,null]`, []uint{1, 3}, true, nil},
		{"List drops fractions and negatives", "[1,2.5,-4,6]", []uint{1, 6}, true, nil},
		{"List deduplicates preserving order", "[5,1,5,2,1]", []uint{5, 1, 2}, true, nil},
		{"List of only garbage yields empty set", `["a","b"]`, []uint{}, true, nil},
		{"Empty list", "[]", []uint{}, true, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids, given, err := service.ParseIDSet(json.RawMessage(tc.raw))
			assert.Equal(t, tc.expectGiven, given)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectIDs, ids)
		})
	}
}

func TestValidateMaxPoints(t *testing.T) {
	assert.NoError(t, service.ValidateMaxPoints(models.MinTaskPoints))
	assert.NoError(t, service.ValidateMaxPoints(500))
	assert.NoError(t, service.ValidateMaxPoints(models.MaxTaskPoints))
	assert.ErrorIs(t, service.ValidateMaxPoints(0), apperrors.ErrInvalidTaskDetails)
	assert.ErrorIs(t, service.ValidateMaxPoints(-10), apperrors.ErrInvalidTaskDetails)
	assert.ErrorIs(t, service.ValidateMaxPoints(models.MaxTaskPoints+1), apperrors.ErrInvalidTaskDetails)
}

func TestClampTaskTypeAndCategory(t *testing.T) {
	assert.Equal(t, models.TaskReadOnly, service.ClampTaskType(0))
	assert.Equal(t, models.TaskFileSubmission, service.ClampTaskType(1))
	assert.Equal(t, models.MaxTaskType, service.ClampTaskType(99))
	assert.Equal(t, models.TaskReadOnly, service.ClampTaskType(-5))

	assert.Equal(t, models.CategoryGeneral, service.ClampTaskCategory(0))
	assert.Equal(t, models.CategoryForFun, service.ClampTaskCategory(1))
	assert.Equal(t, models.MaxTaskCategory, service.ClampTaskCategory(42))
	assert.Equal(t, models.CategoryGeneral, service.ClampTaskCategory(-1))
}

func TestNormalizeAssetField(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		value, present := service.NormalizeAssetField(nil)
		assert.False(t, present)
		assert.Empty(t, value)
	})

	t.Run("String value", func(t *testing.T) {
		value, present := service.NormalizeAssetField(json.RawMessage(`"pic.png"`))
		assert.True(t, present)
		assert.Equal(t, "pic.png", value)
	})

	t.Run("Non-string value is cleared, not rejected", func(t *testing.T) {
		value, present := service.NormalizeAssetField(json.RawMessage(`123`))
		assert.True(t, present)
		assert.Empty(t, value)
	})

	t.Run("Null clears", func(t *testing.T) {
		value, present := service.NormalizeAssetField(json.RawMessage(`null`))
		assert.False(t, present)
		assert.Empty(t, value)
	})
}

func TestValidateImageURL(t *testing.T) {
	valid := []string{"", "a.png", "dir/photo.jpeg", "x.jpg", "anim.gif", "logo.svg"}
	for _, image := range valid {
		assert.NoError(t, service.ValidateImageURL(image), image)
	}

	invalid := []string{"a.PNG", "a.bmp", "noext", "a.png.exe", "trailingdot."}
	for _, image := range invalid {
		assert.ErrorIs(t, service.ValidateImageURL(image), apperrors.ErrInvalidImageURL, image)
	}
}

func TestValidateTaskURL(t *testing.T) {
	assert.NoError(t, service.ValidateTaskURL(""))
	assert.NoError(t, service.ValidateTaskURL("guide.html"))
	assert.NoError(t, service.ValidateTaskURL("docs/deep/page.html"))

	invalid := []string{"page.htm", "page.HTML", "page", "page.html5"}
	for _, url := range invalid {
		assert.ErrorIs(t, service.ValidateTaskURL(url), apperrors.ErrInvalidTaskURL, url)
	}
}
