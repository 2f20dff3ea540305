package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", header: "", wantErr: ErrMissingAuthorization},
		{name: "whitespace only", header: "   ", wantErr: ErrMissingAuthorization},
		{name: "scheme only", header: "Bearer", wantErr: ErrMalformedAuthorization},
		{name: "scheme with trailing spaces", header: "Bearer  ", wantErr: ErrMalformedAuthorization},
		{name: "wrong scheme", header: "Basic xyz", wantErr: ErrMalformedAuthorization},
		{name: "lowercase scheme", header: "bearer abc", wantErr: ErrMalformedAuthorization},
		{name: "extra parts", header: "Bearer abc extra", wantErr: ErrMalformedAuthorization},
		{name: "ok", header: "Bearer abc", want: "abc"},
		{name: "ok with padding", header: "  Bearer abc  ", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
