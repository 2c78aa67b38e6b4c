package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		part   string
		want   Family
		wantOK bool
	}{
		{"STM32F407VGTx", STM32F4, true},
		{"STM32L552ZETxQ", STM32L5, true},
		{"STM32U575ZITxQ", STM32U5, true},
		{"STM32H743ZITx", STM32H7, true},
		{"STM32MP157CACx", STM32MP1, true},
		{"STM32MP135FAFx", STM32MP13, true},
		{"STM32WBA52CGUx", STM32WBA, true},
		{"STM32WB55RGVx", STM32WB, true},
		{"ATSAMD21", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			got, ok := FamilyOf(tt.part)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamilyCapabilities(t *testing.T) {
	assert.True(t, STM32L5.TrustZone())
	assert.True(t, STM32U5.TrustZone())
	assert.False(t, STM32F4.TrustZone())
	assert.True(t, STM32H7.MultiCore())
	assert.False(t, STM32L5.MultiCore())
}
