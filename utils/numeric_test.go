package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	v := ToFloat("1,50,000.50")
	assert.NotNil(t, v)
	assert.Equal(t, 150000.50, *v)

	v = ToFloat("  30,570 ")
	assert.NotNil(t, v)
	assert.Equal(t, 30570.0, *v)

	assert.Nil(t, ToFloat(""))
	assert.Nil(t, ToFloat("   "))
	assert.Nil(t, ToFloat("-"))
	assert.Nil(t, ToFloat("Credit Limit"))
	assert.Nil(t, ToFloat("12/05/2024"))
}

func TestSafeDivide(t *testing.T) {
	ten, four, zero := 10.0, 4.0, 0.0

	v := SafeDivide(&ten, &four)
	assert.NotNil(t, v)
	assert.Equal(t, 2.5, *v)

	assert.Nil(t, SafeDivide(&ten, &zero))
	assert.Nil(t, SafeDivide(nil, &four))
	assert.Nil(t, SafeDivide(&ten, nil))
}

func TestSafeDivideRounding(t *testing.T) {
	a, b := 654.0, 900.0

	v := SafeDivide(&a, &b)
	assert.NotNil(t, v)
	assert.Equal(t, 0.7267, *v)
}

func TestFormatPercent(t *testing.T) {
	x := 0.3057
	assert.Equal(t, "30.57%", FormatPercent(&x))

	assert.Equal(t, "N/A", FormatPercent(nil))
}
