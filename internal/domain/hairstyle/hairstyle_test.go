package hairstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

func TestParseDataURI(t *testing.T) {
	img := Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

	back, err := ParseDataURI(img.DataURI())
	require.NoError(t, err)
	assert.Equal(t, img, *back)

	for _, bad := range []string{
		"",
		"https://example.com/me.png",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png,raw",
		"data:image/png;base64,@@@",
		"data:image/png;base64,",
	} {
		_, err := ParseDataURI(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_photo"), bad)
	}
}
