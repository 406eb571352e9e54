package adapters

import (
	"strings"

	"schoolmenu/internal/types"
)

const defaultDeviceWidth = 800
const defaultDeviceHeight = 480

// DeviceConfigAdapter stands in for the display host's device settings.
type DeviceConfigAdapter struct {
	Width  int
	Height int
	Values map[string]string
}

func NewDeviceConfigAdapter(width int, height int, orientation string) DeviceConfigAdapter {
	if width <= 0 {
		width = defaultDeviceWidth
	}
	if height <= 0 {
		height = defaultDeviceHeight
	}
	orientation = strings.ToLower(strings.TrimSpace(orientation))
	if orientation == "" {
		orientation = string(types.OrientationHorizontal)
	}
	return DeviceConfigAdapter{
		Width:  width,
		Height: height,
		Values: map[string]string{"orientation": orientation},
	}
}

func (a DeviceConfigAdapter) Resolution() types.Dimensions {
	return types.Dimensions{Width: a.Width, Height: a.Height}
}

func (a DeviceConfigAdapter) Config(key string) string {
	return a.Values[key]
}
