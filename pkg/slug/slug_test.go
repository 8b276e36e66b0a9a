// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "Open House 2026", want: "open-house-2026"},
		{name: "accented characters", input: "Café Résumé", want: "cafe-resume"},
		{name: "punctuation stripped", input: "Hello, World! (draft)", want: "hello-world-draft"},
		{name: "multiple spaces collapse", input: "a   b", want: "a-b"},
		{name: "leading and trailing junk", input: "  --News--  ", want: "news"},
		{name: "thai script reduces to empty", input: "ข่าวประชาสัมพันธ์", want: ""},
		{name: "mixed thai and ascii keeps ascii", input: "รับสมัคร TCAS รอบ 2", want: "tcas-2"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.input))
		})
	}
}

func TestDerive(t *testing.T) {
	got := Derive("Open House")
	assert.Regexp(t, regexp.MustCompile(`^open-house-\d{13}$`), got)
}

func TestDerive_EmptyBase(t *testing.T) {
	got := Derive("ประกาศ")
	assert.Regexp(t, regexp.MustCompile(`^\d{13}$`), got)
	assert.False(t, strings.HasPrefix(got, "-"))
}
