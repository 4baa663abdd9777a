package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExtractEmail(t *testing.T) {
	rec := Extract("My email is a@b.com")

	require.NotNil(t, rec.Email)
	assert.Equal(t, "a@b.com", *rec.Email)
	assert.Nil(t, rec.Phone)
	assert.Nil(t, rec.Name)
}

func TestExtractPhone(t *testing.T) {
	rec := Extract("Call me at 9876543210")

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "9876543210", *rec.Phone)
	// The "call me" pattern greedily captures the trailing words. That loose
	// behaviour is intentional and preserved.
	require.NotNil(t, rec.Name)
	assert.Equal(t, "At 9876543210", *rec.Name)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{"name prefix", "My name is John Smith", strPtr("John Smith")},
		{"i am", "i am Alice", strPtr("Alice")},
		{"contraction", "I'm bob", strPtr("Bob")},
		{"colon form", "Name: carol jones", strPtr("Carol Jones")},
		{"this is", "this is Dave", strPtr("Dave")},
		{"hello trailing word", "hello john", strPtr("John")},
		{"stop word rejected", "my name is the", nil},
		{"no match", "I would like some information", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract(tt.text)
			if tt.want == nil {
				assert.Nil(t, rec.Name)
				return
			}
			require.NotNil(t, rec.Name)
			assert.Equal(t, *tt.want, *rec.Name)
		})
	}
}

func TestExtractCombined(t *testing.T) {
	rec := Extract("My name is Priya, my email is priya@x.com")

	require.NotNil(t, rec.Name)
	assert.Equal(t, "Priya", *rec.Name)
	require.NotNil(t, rec.Email)
	assert.Equal(t, "priya@x.com", *rec.Email)
	assert.Nil(t, rec.Phone)
	assert.True(t, rec.HasAny())
}

func TestExtractIsPure(t *testing.T) {
	const text = "name: Eve, reach me at 1234567890 or eve@example.org"

	first := Extract(text)
	second := Extract(text)
	assert.Equal(t, first, second)
}

func TestPhoneRequiresExactlyTenDigits(t *testing.T) {
	assert.Nil(t, Extract("call 123456789").Phone, "nine digits must not match")
	assert.Nil(t, Extract("call 12345678901").Phone, "eleven digits must not match")
}
