package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	timestamp := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	slug := "TR-7f6c0d1e-a0b1-4c2d-9e3f-123456789abc"

	token := EncodeToken(timestamp, slug)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTimestamp, decodedSlug, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, timestamp, decodedTimestamp, "Timestamp should match after decode")
	assert.Equal(t, slug, decodedSlug, "Slug should match after decode")
}

func TestDecodeTokenInvalid(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	_, _, err = DecodeToken("aGVsbG8=") // decodes to "hello", no separator
	assert.Error(t, err, "Token without separator should return an error")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2024-05-15T14:30:45.123456789Z", "TR-abc", "150.25"}

	token := EncodeMultiFieldToken(fields...)
	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decoded, "Fields should match after decode")
}
