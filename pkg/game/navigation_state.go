package game

import (
	"fmt"
	"log"

	"github.com/decker502/zoomnav/pkg/types"
)

// SceneChangeListener 场景切换回调
// from/to 分别为切换前后的场景，direction 为切换方向
type SceneChangeListener func(from, to types.SceneID, direction types.ZoomState)

// NavigationState 场景序列状态
//
// 职责：
//   - 维护固定的有序场景列表和"当前场景"指针
//   - 处理过渡完成回调（前进 / 后退，边界场景静默吸收）
//   - 记录上一次过渡的方向（zoomDirection），供新场景延续惯性
//   - 记录当前场景的放大状态（sceneZoomed），供 UI 提示
//   - 记录全屏面板是否打开（打开时不响应导航）
//
// 架构说明：
//   - 不是全局单例，由 App 创建后按引用注入到导航组件
//   - currentScene 只由 CompleteTransition / Advance / Retreat 修改
type NavigationState struct {
	order []types.SceneID
	index map[types.SceneID]int

	current          int
	zoomDirection    types.ZoomState
	sceneZoomed      types.ZoomState
	fullscreenActive bool

	listeners []SceneChangeListener
}

// NewNavigationState 创建场景序列状态
//
// 参数：
//   - order: 有序场景列表，不能为空，不能重复
//
// 返回：
//   - *NavigationState: 初始状态为第一个场景，zoomDirection 为 none
//   - error: 场景列表无效时返回错误
func NewNavigationState(order []types.SceneID) (*NavigationState, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("scene order is empty")
	}

	index := make(map[types.SceneID]int, len(order))
	for i, scene := range order {
		if _, exists := index[scene]; exists {
			return nil, fmt.Errorf("duplicate scene '%s' in scene order", scene)
		}
		index[scene] = i
	}

	copied := make([]types.SceneID, len(order))
	copy(copied, order)

	return &NavigationState{
		order: copied,
		index: index,
	}, nil
}

// Current 返回当前场景
func (ns *NavigationState) Current() types.SceneID {
	return ns.order[ns.current]
}

// CurrentIndex 返回当前场景的下标
func (ns *NavigationState) CurrentIndex() int {
	return ns.current
}

// IndexOf 返回场景下标，不在序列中时返回 -1
func (ns *NavigationState) IndexOf(scene types.SceneID) int {
	if i, ok := ns.index[scene]; ok {
		return i
	}
	return -1
}

// IsFirst 检查场景是否是序列中的第一个
func (ns *NavigationState) IsFirst(scene types.SceneID) bool {
	return ns.IndexOf(scene) == 0
}

// Order 返回场景顺序（副本）
func (ns *NavigationState) Order() []types.SceneID {
	out := make([]types.SceneID, len(ns.order))
	copy(out, ns.order)
	return out
}

// ZoomDirection 返回上一次过渡的方向
func (ns *NavigationState) ZoomDirection() types.ZoomState {
	return ns.zoomDirection
}

// SceneZoomed 返回当前场景的放大状态
func (ns *NavigationState) SceneZoomed() types.ZoomState {
	return ns.sceneZoomed
}

// SetSceneZoomed 设置当前场景的放大状态（每帧由导航动画调用）
func (ns *NavigationState) SetSceneZoomed(zoomed types.ZoomState) {
	ns.sceneZoomed = zoomed
}

// FullscreenActive 返回全屏面板是否打开
func (ns *NavigationState) FullscreenActive() bool {
	return ns.fullscreenActive
}

// SetFullscreenActive 设置全屏面板状态
func (ns *NavigationState) SetFullscreenActive(active bool) {
	ns.fullscreenActive = active
}

// OnSceneChange 注册场景切换监听器
// 监听器在 currentScene 修改之后同步调用
func (ns *NavigationState) OnSceneChange(listener SceneChangeListener) {
	ns.listeners = append(ns.listeners, listener)
}

// Advance 前进到下一个场景
// 已经是最后一个场景时不做任何修改，返回 false
func (ns *NavigationState) Advance() bool {
	if ns.current >= len(ns.order)-1 {
		return false
	}
	ns.switchTo(ns.current+1, types.ZoomIn)
	return true
}

// Retreat 返回上一个场景
// 已经是第一个场景时不做任何修改，返回 false
func (ns *NavigationState) Retreat() bool {
	if ns.current <= 0 {
		return false
	}
	ns.switchTo(ns.current-1, types.ZoomOut)
	return true
}

// CompleteTransition 过渡动画完成回调
//
// 参数：
//   - isZoomIn: true 表示放大完成（前进），false 表示缩小完成（后退）
//
// 边界场景没有对应的邻居时，状态保持不变
func (ns *NavigationState) CompleteTransition(isZoomIn bool) {
	var changed bool
	if isZoomIn {
		changed = ns.Advance()
	} else {
		changed = ns.Retreat()
	}

	if !changed {
		log.Printf("[NavigationState] Transition absorbed at boundary scene %s (zoomIn=%v)", ns.Current(), isZoomIn)
	}
}

// switchTo 切换当前场景并通知监听器
func (ns *NavigationState) switchTo(next int, direction types.ZoomState) {
	from := ns.order[ns.current]

	ns.current = next
	ns.zoomDirection = direction
	ns.sceneZoomed = types.ZoomNone

	to := ns.order[ns.current]
	log.Printf("[NavigationState] Scene changed: %s -> %s (zoom %s)", from, to, direction)

	for _, listener := range ns.listeners {
		listener(from, to, direction)
	}
}
