package status_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nfagan/categorical/status"
	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	assert.True(t, status.OK.Ok())
	assert.False(t, status.CategoryExists.Ok())
}

func TestString(t *testing.T) {
	assert.Equal(t, "CATEGORY_EXISTS", status.CategoryExists.String())
	assert.Equal(t, "OK", status.OK.String())
	assert.Contains(t, status.Status(999).String(), "Status(999)")
}

func TestErrorWrapping(t *testing.T) {
	err := fmt.Errorf("add category: %w", status.CategoryExists)
	assert.ErrorIs(t, err, status.CategoryExists)
	assert.False(t, errors.Is(err, status.OutOfBounds))
}
