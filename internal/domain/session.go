package domain

// Step identifies one stage of the intake conversation
type Step string

const (
	StepNone       Step = "none"
	StepLang       Step = "lang"
	StepName       Step = "name"
	StepPhone      Step = "phone"
	StepRole       Step = "role"
	StepExperience Step = "experience"
	StepPrevPlace  Step = "prev_place"
	StepVideo      Step = "video"
	StepVoice      Step = "voice"
	StepBirth      Step = "birth"
	StepCity       Step = "city"
	StepRussian    Step = "russian"
	StepMarriage   Step = "marriage"
	StepSalary     Step = "salary"
)

// Session tracks one user's progress through the intake flow
type Session struct {
	UserID int64
	Step   Step
	Fields map[string]string
}

// NewSession creates a fresh session at the language step
func NewSession(userID int64) *Session {
	return &Session{
		UserID: userID,
		Step:   StepLang,
		Fields: make(map[string]string),
	}
}

// EventKind classifies an inbound user event
type EventKind int

const (
	EventText EventKind = iota
	EventCallback
	EventVideo
	EventVideoNote
	EventVoice
)

// Event is one inbound user action, normalized from the transport
type Event struct {
	Kind     EventKind
	Text     string // text messages
	Data     string // callback payload, e.g. language code
	FileID   string // media messages
	Duration int    // media duration in seconds
}

// Keyboard identifies a reply markup attached to a prompt
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardRemove
	KeyboardLang
	KeyboardRole
	KeyboardYesNo
	KeyboardStart
)

// Prompt is one outbound message to the user
type Prompt struct {
	Text     string
	Keyboard Keyboard
}
