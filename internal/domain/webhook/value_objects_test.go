//go:build unit

package webhook_test

import (
	"strings"
	"testing"

	"webhooknest/internal/domain/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "12文字の英数字OK", input: "aB3xY9k2Lm0q"},
		{name: "ハイフンとアンダースコアOK", input: "aB3xY9_k2-m0"},
		{name: "11文字NG", input: "aB3xY9k2Lm0", errIs: webhook.ErrInvalidSlug},
		{name: "13文字NG", input: "aB3xY9k2Lm0qZ", errIs: webhook.ErrInvalidSlug},
		{name: "空文字NG", input: "", errIs: webhook.ErrInvalidSlug},
		{name: "記号入りNG", input: "aB3xY9k2Lm0/", errIs: webhook.ErrInvalidSlug},
		{name: "空白入りNG", input: "aB3xY9k2 m0q", errIs: webhook.ErrInvalidSlug},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slug, err := webhook.NewSlug(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, slug.Value())
		})
	}
}

func TestDescription(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		isEmpty bool
		errIs   error
	}{
		{name: "通常の説明OK", input: "CI pipeline notifications", want: "CI pipeline notifications"},
		{name: "空文字OK", input: "", want: "", isEmpty: true},
		{name: "空白のみは空扱い", input: "   ", want: "", isEmpty: true},
		{name: "500文字ちょうどOK", input: strings.Repeat("a", 500), want: strings.Repeat("a", 500)},
		{name: "501文字NG", input: strings.Repeat("a", 501), errIs: webhook.ErrDescriptionTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := webhook.NewDescription(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Value())
			assert.Equal(t, tc.isEmpty, d.IsEmpty())
		})
	}
}
