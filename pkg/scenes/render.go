package scenes

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/types"
	"github.com/goki/mat32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// body 场景中的天体（世界坐标）
type body struct {
	name     string
	position mat32.Vec3
	radius   float32
	color    color.RGBA
}

// 所有场景共用一个世界，镜头在其中移动
var bodies = []body{
	{name: "Sun", position: mat32.NewVec3(0, 0, 0), radius: 0.5, color: color.RGBA{R: 255, G: 200, B: 80, A: 255}},
	{name: "Earth", position: mat32.NewVec3(3, 0, 0), radius: 0.12, color: color.RGBA{R: 70, G: 130, B: 230, A: 255}},
	{name: "Moon", position: mat32.NewVec3(3.35, 0.05, 0.1), radius: 0.03, color: color.RGBA{R: 200, G: 200, B: 200, A: 255}},
}

// starfield 远处的星星，固定种子保证每次启动一致
var starfield = func() []mat32.Vec3 {
	rng := rand.New(rand.NewSource(7))
	stars := make([]mat32.Vec3, 400)
	for i := range stars {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)
		r := 40 + rng.Float64()*20
		stars[i] = mat32.NewVec3(
			float32(r*math.Sin(phi)*math.Cos(theta)),
			float32(r*math.Cos(phi)),
			float32(r*math.Sin(phi)*math.Sin(theta)),
		)
	}
	return stars
}()

var (
	backgroundColor = color.RGBA{R: 4, G: 6, B: 18, A: 255}
	starColor       = color.RGBA{R: 220, G: 220, B: 255, A: 255}
	orbitColor      = color.RGBA{R: 60, G: 70, B: 110, A: 255}
)

// project 把世界坐标投影到屏幕坐标
//
// 返回:
//   - x, y: 屏幕坐标
//   - scale: 单位长度在屏幕上的像素数（用于计算半径）
//   - ok: 点在摄像机后方时为 false
func project(camera *types.Camera, p mat32.Vec3, width, height int) (x, y, scale float32, ok bool) {
	view := inverseRotate(camera.Orientation, p.Sub(camera.Position))

	// 摄像机朝 -Z 方向看
	depth := -view.Z
	if depth <= 0.0001 {
		return 0, 0, 0, false
	}

	fov := float64(camera.FOV)
	if fov <= 0 {
		fov = 60
	}
	focal := float32(float64(height) / 2 / math.Tan(float64(mat32.DegToRad(float32(fov)))/2))

	scale = focal / depth
	x = float32(width)/2 + view.X*scale
	y = float32(height)/2 - view.Y*scale
	return x, y, scale, true
}

// inverseRotate 用单位四元数 q 的共轭旋转向量 v
func inverseRotate(q mat32.Quat, v mat32.Vec3) mat32.Vec3 {
	// v' = v + 2w(u×v) + 2u×(u×v)，其中 u = -q.xyz
	ux, uy, uz, w := -q.X, -q.Y, -q.Z, q.W

	tx := 2 * (uy*v.Z - uz*v.Y)
	ty := 2 * (uz*v.X - ux*v.Z)
	tz := 2 * (ux*v.Y - uy*v.X)

	return mat32.NewVec3(
		v.X+w*tx+(uy*tz-uz*ty),
		v.Y+w*ty+(uz*tx-ux*tz),
		v.Z+w*tz+(ux*ty-uy*tx),
	)
}

// drawScene 绘制当前镜头看到的世界和场景标题
func drawScene(screen *ebiten.Image, camera *types.Camera, entry config.SceneEntry, elapsed float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(backgroundColor)

	for i, star := range starfield {
		x, y, _, ok := project(camera, star, width, height)
		if !ok {
			continue
		}
		// 轻微闪烁
		c := starColor
		c.A = uint8(160 + 80*math.Sin(elapsed*2+float64(i)))
		vector.DrawFilledRect(screen, x, y, 1, 1, c, false)
	}

	drawOrbit(screen, camera, bodies[0].position, 3, width, height)

	for _, b := range bodies {
		x, y, scale, ok := project(camera, b.position, width, height)
		if !ok {
			continue
		}
		r := b.radius * scale
		if r < 1 {
			r = 1
		}
		if r > float32(width)*4 {
			continue
		}
		vector.DrawFilledCircle(screen, x, y, r, b.color, true)
		if r > 6 && r < float32(height)/3 {
			ebitenutil.DebugPrintAt(screen, b.name, int(x+r+4), int(y-6))
		}
	}

	ebitenutil.DebugPrintAt(screen, entry.DisplayName(), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FOV %.0f", camera.FOV), 16, 32)
}

// drawOrbit 绘制 XZ 平面上的圆形轨道
func drawOrbit(screen *ebiten.Image, camera *types.Camera, center mat32.Vec3, radius float64, width, height int) {
	const segments = 64

	var prevX, prevY float32
	prevOK := false
	for i := 0; i <= segments; i++ {
		angle := float64(i) / segments * 2 * math.Pi
		p := center.Add(mat32.NewVec3(float32(radius*math.Cos(angle)), 0, float32(radius*math.Sin(angle))))

		x, y, _, ok := project(camera, p, width, height)
		if ok && prevOK {
			vector.StrokeLine(screen, prevX, prevY, x, y, 1, orbitColor, true)
		}
		prevX, prevY, prevOK = x, y, ok
	}
}
