package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"UNPUBLISHED", "PUBLISHED"} {
		status, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	for _, invalid := range []string{"", "published", "NOT_REAL", "UNKNOWN"} {
		_, err := ParseStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", invalid)
	}
}
