package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyflow/leadfunnel/pkg/binder"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSON_Valid(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Anna","count":3}`))
	r.Header.Set("Content-Type", "application/json")

	var p payload
	require.NoError(t, binder.JSON()(r, &p))
	assert.Equal(t, "Anna", p.Name)
	assert.Equal(t, 3, p.Count)
}

func TestJSON_CharsetParameter(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Anna"}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	var p payload
	assert.NoError(t, binder.JSON()(r, &p))
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong media type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrInvalidJSON},
		{"malformed body", `{"name":`, "application/json", binder.ErrInvalidJSON},
		{"trailing data", `{"name":"a"} {"name":"b"}`, "application/json", binder.ErrInvalidJSON},
		{"type mismatch", `{"count":"three"}`, "application/json", binder.ErrInvalidJSON},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			var p payload
			assert.ErrorIs(t, binder.JSON()(r, &p), tt.wantErr)
		})
	}
}
