package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在起点和终点处取 0 和 1
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseLinear":     EaseLinear,
		"EaseOutQuad":    EaseOutQuad,
		"EaseInOutQuad":  EaseInOutQuad,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, got)
			}
		})
	}
}

// TestEasingMidpoints 测试中点取值
func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		expected float64
	}{
		{"EaseLinear", EaseLinear, 0.5},
		{"EaseOutQuad", EaseOutQuad, 0.75},    // 1 - (1-0.5)^2
		{"EaseInOutQuad", EaseInOutQuad, 0.5}, // 2 * 0.5^2
		{"EaseOutCubic", EaseOutCubic, 0.875}, // 1 - (1-0.5)^3
		{"EaseInOutCubic", EaseInOutCubic, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(0.5)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("%s(0.5) = %v, 期望 %v", tt.name, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubicAheadOfLinear 缓出在整个过程中位置都领先或等于线性
func TestEaseOutCubicAheadOfLinear(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.1 {
		eased := EaseOutCubic(p)
		if eased < EaseLinear(p)-0.001 {
			t.Errorf("EaseOutCubic(%v) = %v 不应该落后于线性值 %v", p, eased, p)
		}
	}
}

// TestEaseInOutQuadMonotonic 缓入缓出单调不减
func TestEaseInOutQuadMonotonic(t *testing.T) {
	prev := EaseInOutQuad(0)
	for p := 0.05; p <= 1.0; p += 0.05 {
		cur := EaseInOutQuad(p)
		if cur < prev {
			t.Errorf("EaseInOutQuad(%v) = %v 小于前一个值 %v", p, cur, prev)
		}
		prev = cur
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestFOVZoomWithEasing 模拟镜头视野从 60° 推进到 20° 的过程
func TestFOVZoomWithEasing(t *testing.T) {
	startFOV, endFOV := 60.0, 20.0

	for p := 0.0; p <= 1.0; p += 0.25 {
		fov := Lerp(startFOV, endFOV, EaseOutCubic(p))
		if fov < endFOV-0.001 || fov > startFOV+0.001 {
			t.Errorf("进度 %v 时视野 %v 超出范围 [%v, %v]", p, fov, endFOV, startFOV)
		}
	}
	if got := Lerp(startFOV, endFOV, EaseOutCubic(1)); math.Abs(got-endFOV) > 0.001 {
		t.Errorf("进度 1.0 时视野应为 %v, 实际 %v", endFOV, got)
	}
}
