package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ToDuration(5))
	assert.Equal(t, time.Duration(0), ToDuration(0))
	assert.Equal(t, 300*time.Millisecond, ToDurationMs(300))
}

func TestJoinInts(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want string
	}{
		{"nil", nil, ""},
		{"single", []int64{7}, "7"},
		{"many", []int64{1, -2, 30}, "1,-2,30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinInts(tt.in, ","))
		})
	}
}
