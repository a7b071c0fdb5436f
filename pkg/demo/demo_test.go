package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelloWorld(t *testing.T) {
	assert.Equal(t, "Hello, World!", HelloWorld())
}

func TestAddNumbers(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive", 2, 3, 5},
		{"zero", 0, 0, 0},
		{"negative", -4, 1, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddNumbers(tt.a, tt.b))
		})
	}
}

func TestCalculator(t *testing.T) {
	calc := NewCalculator()
	assert.Equal(t, 0.0, calc.Result())

	assert.Equal(t, 20.0, calc.Multiply(4, 5))
	assert.Equal(t, 20.0, calc.Result())

	calc.Multiply(1.5, 2)
	assert.Equal(t, 3.0, calc.Result(), "result holds the last product only")
}
