package types

type PublishLocation string

const (
	PublishLocationWebsite PublishLocation = "website"
)

type DayState string

const (
	DayStatePublished   DayState = "published"
	DayStatePending     DayState = "pending"
	DayStateUnavailable DayState = "unavailable"
)

type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)
