package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenTranNo(t *testing.T) {
	tranNo := GenTranNo()

	assert.Len(t, tranNo, 20)
	for _, c := range tranNo {
		assert.True(t, c >= '0' && c <= '9', "reference number must be numeric, got %q", tranNo)
	}
}

func TestRandIntRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := RandInt(9999)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 9999)
	}
}
