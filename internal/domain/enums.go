package domain

// Emotion classifies a detected affective state. The seven values are fixed;
// the same enum doubles as the resource category tag.
type Emotion string

const (
	EmotionHappiness Emotion = "happiness"
	EmotionNeutral   Emotion = "neutral"
	EmotionSadness   Emotion = "sadness"
	EmotionAnger     Emotion = "anger"
	EmotionSurprise  Emotion = "surprise"
	EmotionDisgust   Emotion = "disgust"
	EmotionFear      Emotion = "fear"
)

// Emotions lists all values in declaration order. List endpoints and the
// settings table follow this order.
var Emotions = []Emotion{
	EmotionHappiness,
	EmotionNeutral,
	EmotionSadness,
	EmotionAnger,
	EmotionSurprise,
	EmotionDisgust,
	EmotionFear,
}

func (e Emotion) String() string { return string(e) }

func (e Emotion) IsValid() bool {
	switch e {
	case EmotionHappiness, EmotionNeutral, EmotionSadness, EmotionAnger,
		EmotionSurprise, EmotionDisgust, EmotionFear:
		return true
	}
	return false
}

// Index returns the position of e in declaration order, or -1 if invalid.
func (e Emotion) Index() int {
	for i, v := range Emotions {
		if v == e {
			return i
		}
	}
	return -1
}

// ResourceKind identifies the media type of a catalog resource.
type ResourceKind string

const (
	ResourceKindAudio ResourceKind = "audio"
	ResourceKindVideo ResourceKind = "video"
	ResourceKindImage ResourceKind = "image"
)

func (k ResourceKind) String() string { return string(k) }

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKindAudio, ResourceKindVideo, ResourceKindImage:
		return true
	}
	return false
}

// MessageStatus represents the read state of an inbox message.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "Unread"
	MessageStatusRead    MessageStatus = "Read"
	MessageStatusReplied MessageStatus = "Replied"
)

func (s MessageStatus) String() string { return string(s) }

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
