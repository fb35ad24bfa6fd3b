package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{name: "no placeholders", template: "success", want: "success"},
		{name: "no args", template: "event {} not found", want: "event {} not found"},
		{name: "single", template: "event {} not found", args: []any{7}, want: "event 7 not found"},
		{name: "several", template: "event {} has only {} tickets left", args: []any{int64(3), 2}, want: "event 3 has only 2 tickets left"},
		{name: "missing args", template: "{} and {}", args: []any{"a"}, want: "a and {}"},
		{name: "surplus args", template: "only {}", args: []any{"one", "two"}, want: "only one"},
		{name: "error arg", template: "cause: {}", args: []any{errors.New("boom")}, want: "cause: boom"},
		{name: "nil arg", template: "value {}", args: []any{nil}, want: "value <nil>"},
		{name: "adjacent", template: "{}{}", args: []any{1, 2}, want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMessage(tt.template, tt.args...))
		})
	}
}
