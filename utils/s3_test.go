package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	contentType, ext, data, err := DecodeDataURL("data:image/jpeg;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, ".jpg", ext)
	assert.Equal(t, []byte("hello"), data)

	_, ext, _, err = DecodeDataURL("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)
}

func TestDecodeDataURLRejects(t *testing.T) {
	for _, in := range []string{
		"aGVsbG8=",
		"image/png;base64,aGVsbG8=",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,!!!",
	} {
		_, _, _, err := DecodeDataURL(in)
		assert.Error(t, err, in)
	}
}
