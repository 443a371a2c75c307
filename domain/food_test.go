package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityNumber(t *testing.T) {
	assert.Equal(t, 3, ParseQuantityNumber("3 boxes"))
	assert.Equal(t, 12, ParseQuantityNumber("12kg of rice"))
	assert.Equal(t, 5, ParseQuantityNumber("around 5 to 10 portions"))
	assert.Equal(t, 0, ParseQuantityNumber("a few loaves"))
	assert.Equal(t, 0, ParseQuantityNumber(""))
}
