package domain

import "time"

// ActionPlan is the transient output of resolving one detected emotion:
// the still-valid resources per category plus the two pass-through commands.
// It is produced fresh on every resolution and never persisted. An empty
// plan (no resources, no commands) is the defined result for an emotion
// with no stored setting.
type ActionPlan struct {
	Emotion          Emotion
	MusicResources   []Resource
	VideoResources   []Resource
	ColorResources   []Resource
	WallpaperCommand string
	MusicCommand     string
	Confidence       *float64
	ResolvedAt       time.Time
}

// EmptyPlan returns the plan for an unconfigured emotion.
func EmptyPlan(emotion Emotion, confidence *float64, now time.Time) *ActionPlan {
	return &ActionPlan{
		Emotion:        emotion,
		MusicResources: []Resource{},
		VideoResources: []Resource{},
		ColorResources: []Resource{},
		Confidence:     confidence,
		ResolvedAt:     now,
	}
}
