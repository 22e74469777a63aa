package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexRequest struct {
	Index *int `json:"index" validate:"required"`
}

type selfValidating struct{}

func (selfValidating) Validate() error { return errors.New("custom failure") }

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
		fails   bool
	}{
		{name: "valid", body: `{"index": 2}`},
		{name: "empty body", body: "", wantErr: ErrEmptyBody, fails: true},
		{name: "malformed", body: `{"index": 2,}`, fails: true},
		{name: "unknown field", body: `{"index": 2, "year": 1900}`, fails: true},
		{name: "trailing data", body: `{"index": 2} {"index": 3}`, fails: true},
		{name: "wrong type", body: `{"index": "two"}`, fails: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var got indexRequest
			err := DecodeJSON(req, &got)
			if !tc.fails {
				require.NoError(t, err)
				require.NotNil(t, got.Index)
				assert.Equal(t, 2, *got.Index)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	zero := 0
	assert.NoError(t, ValidateRequest(&indexRequest{Index: &zero}))

	err := ValidateRequest(&indexRequest{})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "Index", validationErrs[0].Field())

	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom failure")
}
