package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/ember/asset"
	"github.com/devblok/ember/core"
	"github.com/devblok/ember/gfx/opengl"
	"github.com/devblok/ember/gpu"
	"github.com/devblok/ember/model"
)

func init() {
	runtime.LockOSThread()
}

// DefaultShaders carries the built-in shader sources used when no
// shader directory is configured.
var DefaultShaders = packr.NewBox("./shaders")

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  10,
	},
	Device: core.DeviceConfiguration{
		ScreenWidth:  800,
		ScreenHeight: 600,
		SRGB:         true,
	},
}

// applyEnv overlays .env and environment settings onto the built-in
// configuration.
func applyEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env")
	}

	if v, err := strconv.Atoi(os.Getenv("EMBER_FPS")); err == nil {
		configuration.Time.FramesPerSecond = v
	}
	if v, err := strconv.Atoi(os.Getenv("EMBER_WIDTH")); err == nil {
		configuration.Device.ScreenWidth = uint32(v)
	}
	if v, err := strconv.Atoi(os.Getenv("EMBER_HEIGHT")); err == nil {
		configuration.Device.ScreenHeight = uint32(v)
	}
	if v := os.Getenv("EMBER_SHADER_DIR"); v != "" {
		configuration.Device.ShaderDirectory = v
	}
	if v, err := strconv.ParseBool(os.Getenv("EMBER_SRGB")); err == nil {
		configuration.Device.SRGB = v
	}
}

func newWindow() *sdl.Window {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 5)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow("Ember",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Device.ScreenWidth),
		int32(configuration.Device.ScreenHeight),
		sdl.WINDOW_OPENGL)
	if err != nil {
		panic(err)
	}
	return window
}

// presenter adapts an SDL window to the device's presentation surface.
type presenter struct {
	window *sdl.Window
}

func (p *presenter) Present() {
	p.window.GLSwap()
}

// shaderSources returns the configured shader directory's sources, or
// the built-in defaults when no directory is set.
func shaderSources() ([]string, []gpu.ShaderType) {
	if dir := configuration.Device.ShaderDirectory; dir != "" {
		sources, stages, err := core.LoadShaderSources(dir)
		if err != nil {
			log.WithError(err).Fatal("could not load shaders")
		}
		return sources, stages
	}

	vert, err := DefaultShaders.MustString("default.vert")
	if err != nil {
		log.WithError(err).Fatal("built-in vertex shader missing")
	}
	frag, err := DefaultShaders.MustString("default.frag")
	if err != nil {
		log.WithError(err).Fatal("built-in fragment shader missing")
	}
	return []string{vert, frag}, []gpu.ShaderType{gpu.VertexShaderType, gpu.FragmentShaderType}
}

// loadArchiveTexture uploads texture.dds from the configured asset
// archive, when one is given.
func loadArchiveTexture(device *gpu.Device) gpu.TextureHandle {
	path := os.Getenv("EMBER_ASSETS")
	if path == "" {
		return gpu.InvalidTexture
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Fatal("could not open asset archive")
	}
	defer f.Close()

	archive, err := asset.Open(f)
	if err != nil {
		log.WithError(err).Fatal("could not read asset archive")
	}
	data, err := archive.ReadAll("texture.dds")
	if err != nil {
		log.WithError(err).Warn("archive has no texture.dds")
		return gpu.InvalidTexture
	}

	handle := device.AllocTextureHandle()
	info, err := device.LoadTexture(handle, data, gpu.TextureSRGB)
	if err != nil {
		log.WithError(err).Fatal("could not decode texture.dds")
	}
	log.Infof("loaded texture.dds, %dx%d with %d mips", info.Width, info.Height, info.Mips)
	return handle
}

func main() {
	applyEnv()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window := newWindow()
	defer window.Destroy()

	context, err := window.GLCreateContext()
	if err != nil {
		panic(err)
	}
	defer sdl.GLDeleteContext(context)
	sdl.GLSetSwapInterval(1)

	fns, err := opengl.New()
	if err != nil {
		log.WithError(err).Fatal("could not load the native api")
	}

	device := gpu.NewDevice(fns, &presenter{window: window})
	if err := device.Init(); err != nil {
		log.WithError(err).Fatal("could not initialise the device")
	}
	defer device.Shutdown()

	sources, stages := shaderSources()
	program := device.CreateProgram(sources, stages, nil, "default")
	if !program.Valid() {
		log.Fatal("default program did not build")
	}

	quad := model.Quad()
	decl := model.VertexDeclaration()
	vertexBuffer := device.AllocBufferHandle()
	device.CreateBuffer(vertexBuffer, model.VertexBytes(quad.Vertices()))

	mvp := device.AllocUniform("u_mvp", gpu.UniformMat4, 1)
	texture := loadArchiveTexture(device)
	if texture.Valid() {
		device.BindTexture(0, texture)
		device.SetUniform1i(device.AllocUniform("u_texture", gpu.UniformInt, 1), 0)
	}

	width := int(configuration.Device.ScreenWidth)
	height := int(configuration.Device.ScreenHeight)
	projection := mgl32.Perspective(mgl32.DegToRad(60), float32(width)/float32(height), 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.EventTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		case <-time.FpsTicker().C:
			device.SetFramebuffer(gpu.InvalidFramebuffer, configuration.Device.SRGB)
			device.Viewport(0, 0, width, height)
			device.SetState(gpu.StateDepthTest | gpu.StateCullBack)
			device.Clear(gpu.ClearColor|gpu.ClearDepth, [4]float32{0.05, 0.05, 0.08, 1}, 0)

			device.SetUniformMatrix4f(mvp, projection.Mul4(view).Mul4(quad.Position()))
			device.UseProgram(program)
			device.SetVertexBuffer(&decl, vertexBuffer, 0, nil)
			device.DrawArrays(gpu.PrimitiveTriangles, 0, len(quad.Vertices()))
			device.SwapBuffers()
		}
	}

	device.DestroyBuffer(vertexBuffer)
	if texture.Valid() {
		device.DestroyTexture(texture)
	}
	device.DestroyProgram(program)
}
