package model

import "time"

// Tone is the voice used when personalising replies.
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneWitty        Tone = "witty"
	ToneEmpathetic   Tone = "empathetic"
)

var Tones = []Tone{ToneFriendly, ToneProfessional, ToneWitty, ToneEmpathetic}

func (t Tone) IsValid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

// ActionBias is what replies should steer the conversation towards.
type ActionBias string

const (
	ActionBiasEngage    ActionBias = "engage"
	ActionBiasRedirect  ActionBias = "redirect"
	ActionBiasInform    ActionBias = "inform"
	ActionBiasApologize ActionBias = "apologize"
)

var ActionBiases = []ActionBias{ActionBiasEngage, ActionBiasRedirect, ActionBiasInform, ActionBiasApologize}

func (a ActionBias) IsValid() bool {
	for _, v := range ActionBiases {
		if v == a {
			return true
		}
	}
	return false
}

// OnboardingStep is a forward-only screen sequence.
type OnboardingStep string

const (
	StepProfileSetup    OnboardingStep = "profile_setup"
	StepPlatformConnect OnboardingStep = "platform_connect"
	StepDashboard       OnboardingStep = "dashboard"
)

// Rank orders steps so that transitions can be checked for direction.
func (s OnboardingStep) Rank() int {
	switch s {
	case StepPlatformConnect:
		return 1
	case StepDashboard:
		return 2
	default:
		return 0
	}
}

// Profile is the creator persona used across the dashboard.
type Profile struct {
	UserID     string         `json:"user_id"`
	Name       string         `json:"name"`
	Avatar     string         `json:"avatar"`
	Persona    string         `json:"persona"`
	Tone       Tone           `json:"tone"`
	Signature  string         `json:"signature"`
	ActionBias ActionBias     `json:"action_bias"`
	Step       OnboardingStep `json:"step"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// PlatformConnection is a linked platform account. AccessToken is stored encrypted.
type PlatformConnection struct {
	UserID      string     `json:"user_id"`
	Platform    Platform   `json:"platform"`
	Connected   bool       `json:"connected"`
	AccessToken string     `json:"-"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}
