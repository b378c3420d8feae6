package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailSyntaxValid(t *testing.T) {
	for _, ok := range []string{"ali@example.com", "chen.wei+cuts@mail.example.my"} {
		assert.True(t, IsEmailSyntaxValid(ok), ok)
	}
	for _, bad := range []string{"", "ali", "ali@", "@example.com", "Ali <ali@example.com>", "ali@localhost"} {
		assert.False(t, IsEmailSyntaxValid(bad), bad)
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}
