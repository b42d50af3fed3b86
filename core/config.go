package core

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time   TimeConfiguration
	Device DeviceConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the interval between window event polls,
	// in milliseconds
	EventPollDelay int
}

// DeviceConfiguration is used to configure the rendering device
type DeviceConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// ShaderDirectory is scanned for GLSL sources on startup
	ShaderDirectory string

	// SRGB renders to the default surface with sRGB conversion
	SRGB bool
}
