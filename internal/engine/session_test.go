package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOptions(t *testing.T) {
	tests := []struct {
		level   int
		errProb int
		maxErr  int
	}{
		{level: 0, errProb: 1, maxErr: 10},
		{level: 2, errProb: 14, maxErr: 9}, // 12.7 rounds up, not truncated to 12
		{level: 10, errProb: 65, maxErr: 5},
		{level: 20, errProb: 128, maxErr: 0},
	}

	for _, tt := range tests {
		errProb, maxErr := skillOptions(tt.level)
		assert.Equal(t, tt.errProb, errProb, "err_prob at level %d", tt.level)
		assert.Equal(t, tt.maxErr, maxErr, "max_err at level %d", tt.level)
	}
}
