package user

type ActivityType int

const (
	ActivityTypePlaying ActivityType = iota
	ActivityTypeStreaming
	ActivityTypeListening
	ActivityTypeWatching
	ActivityTypeCustom
	ActivityTypeCompeting
)

type Activity struct {
	Name string       `json:"name"`
	Type ActivityType `json:"type"`
	Url  *string      `json:"url,omitempty"`
}

// CurrentPresence is the (activity, status) pair a presence update carries.
// Activity is optional; a nil activity clears the game field.
type CurrentPresence struct {
	Activity *Activity
	Status   Status
}

// BuildPresence is a convenience for the common "playing X, online" case.
func BuildPresence(activityType ActivityType, name string) CurrentPresence {
	return CurrentPresence{
		Activity: &Activity{
			Name: name,
			Type: activityType,
		},
		Status: StatusOnline,
	}
}
