package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGoToInput(t *testing.T) {
	t.Parallel()
	d := testDeck(t)

	tests := []struct {
		name    string
		input   GoToInput
		want    int
		wantErr bool
	}{
		{"index", GoToInput{Index: intPtr(2)}, 2, false},
		{"index wins over title", GoToInput{Index: intPtr(0), Title: "Code"}, 0, false},
		{"index past end is left to the controller", GoToInput{Index: intPtr(9)}, 9, false},
		{"title", GoToInput{Title: "Picture"}, 2, false},
		{"title trimmed", GoToInput{Title: "  Code "}, 1, false},
		{"negative", GoToInput{Index: intPtr(-3)}, 0, true},
		{"unknown title", GoToInput{Title: "Nope"}, 0, true},
		{"blank", GoToInput{Title: "  "}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := tt.input
			got, err := ResolveGoToInput(&in, d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSelectTabInput(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateSelectTabInput(&SelectTabInput{Index: 0}))
	assert.NoError(t, ValidateSelectTabInput(&SelectTabInput{Index: 4}))
	assert.Error(t, ValidateSelectTabInput(&SelectTabInput{Index: -1}))
}
