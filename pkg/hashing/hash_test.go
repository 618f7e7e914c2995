package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumIsDeterministic(t *testing.T) {
	// arrange
	data := []byte("centichain")

	// act
	first := Sum(data)
	second := Sum(data)

	// assert
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestSumDistinguishesContent(t *testing.T) {
	assert.NotEqual(t, Sum([]byte("a")), Sum([]byte("b")))
}

func TestSumKnownVector(t *testing.T) {
	// SHA256 of the empty string
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Sum(nil))
}

func TestSumStringMatchesSum(t *testing.T) {
	assert.Equal(t, Sum([]byte("payload")), SumString("payload"))
}
