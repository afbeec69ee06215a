package style

// Priority orders style sources on a display. Higher values win.
type Priority int

const (
	PriorityFallback    Priority = 1
	PriorityTheme       Priority = 200
	PrioritySettings    Priority = 400
	PriorityApplication Priority = 600
	PriorityUser        Priority = 800
)

func (p Priority) String() string {
	switch p {
	case PriorityFallback:
		return "fallback"
	case PriorityTheme:
		return "theme"
	case PrioritySettings:
		return "settings"
	case PriorityApplication:
		return "application"
	case PriorityUser:
		return "user"
	default:
		return "custom"
	}
}
