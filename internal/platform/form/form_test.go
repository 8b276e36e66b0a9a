// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

/*
TestNullableInt verifies the null-coercion rules for optional integer fields.
*/
func TestNullableInt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"null_sentinel", "null", nil},
		{"empty_string", "", nil},
		{"garbage", "abc", nil},
		{"float_string", "3.5", nil},
		{"valid", "7", intPtr(7)},
		{"negative", "-1", intPtr(-1)},
		{"zero", "0", intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := form.NullableInt(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

/*
TestDateOrNull verifies date strings pass through untouched and sentinels
collapse to nil.
*/
func TestDateOrNull(t *testing.T) {
	assert.Nil(t, form.DateOrNull(""))
	assert.Nil(t, form.DateOrNull("null"))

	// Syntax is not validated here; the store does that.
	got := form.DateOrNull("2026-01-15 09:30:00")
	require.NotNil(t, got)
	assert.Equal(t, "2026-01-15 09:30:00", *got)

	malformed := form.DateOrNull("not-a-date")
	require.NotNil(t, malformed)
	assert.Equal(t, "not-a-date", *malformed)
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, form.NullableString(""))
	assert.Nil(t, form.NullableString("null"))

	got := form.NullableString("/uploads/cover.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "/uploads/cover.jpg", *got)
}

/*
TestStatus verifies the published-by-default resolution and the strictness
toward garbage values.
*/
func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"absent_defaults_published", "", 1, false},
		{"null_defaults_published", "null", 1, false},
		{"draft", "0", 0, false},
		{"trashed", "-1", -1, false},
		{"published", "1", 1, false},
		{"garbage_rejected", "banana", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := form.Status(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestBool verifies FormData boolean coercion.
*/
func TestBool(t *testing.T) {
	assert.True(t, form.Bool("true"))
	assert.True(t, form.Bool("1"))
	assert.False(t, form.Bool("false"))
	assert.False(t, form.Bool("0"))
	assert.False(t, form.Bool(""))
	assert.False(t, form.Bool("yes"))

	// Absent field falls back; present field parses.
	assert.True(t, form.BoolOr("", false, true))
	assert.False(t, form.BoolOr("false", true, true))
}

/*
TestOptional verifies presence tracking for partial updates.
*/
func TestOptional(t *testing.T) {
	set := form.Some("hello")
	assert.True(t, set.Valid)
	assert.Equal(t, "hello", set.Value)

	unset := form.None[string]()
	assert.False(t, unset.Valid)
}

func intPtr(v int) *int { return &v }
