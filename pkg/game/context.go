package game

import "context"

type navigationStateKey struct{}

// WithNavigationState 返回携带导航状态的 context
// 导航组件只能在这个作用域内取得场景状态
func WithNavigationState(ctx context.Context, state *NavigationState) context.Context {
	return context.WithValue(ctx, navigationStateKey{}, state)
}

// NavigationStateFrom 从 context 中取出导航状态
func NavigationStateFrom(ctx context.Context) (*NavigationState, bool) {
	state, ok := ctx.Value(navigationStateKey{}).(*NavigationState)
	return state, ok && state != nil
}

// MustNavigationState 从 context 中取出导航状态，不存在时 panic
//
// 在 Provider 作用域之外使用场景状态属于集成错误，应当立即暴露
func MustNavigationState(ctx context.Context) *NavigationState {
	state, ok := NavigationStateFrom(ctx)
	if !ok {
		panic("game: navigation state used outside of its provider scope (missing WithNavigationState)")
	}
	return state
}
