//go:build !mobile

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	assert.False(t, IsMobile())

	t.Setenv(MobileEmulateEnv, "1")
	assert.True(t, IsMobile(), "环境变量强制移动端布局")
}
