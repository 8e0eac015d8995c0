package main

import (
	"fmt"
	"strconv"
	"strings"
)

// scriptStep 连续滚动 count 次，每次增量 deltaY（行）
type scriptStep struct {
	deltaY float64
	count  int
}

// parseScript 解析 "in:60,out:30" 形式的滚动脚本
func parseScript(script string) ([]scriptStep, error) {
	var steps []scriptStep

	for _, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		direction, countText, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: expected direction:count", part)
		}

		count, err := strconv.Atoi(countText)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("step %q: invalid count", part)
		}

		var deltaY float64
		switch strings.ToLower(direction) {
		case "in":
			deltaY = -1
		case "out":
			deltaY = 1
		default:
			return nil, fmt.Errorf("step %q: unknown direction %q", part, direction)
		}

		steps = append(steps, scriptStep{deltaY: deltaY, count: count})
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("script is empty")
	}
	return steps, nil
}
