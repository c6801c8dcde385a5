package http

import (
	"io"
	"strings"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding"
	pkgErrors "comment-srv/pkg/errors"
)

type saveProfileReq struct {
	Name       string `json:"name"`
	Persona    string `json:"persona"`
	Tone       string `json:"tone"`
	Signature  string `json:"signature"`
	ActionBias string `json:"action_bias"`
}

// validate reports every bad field at once so the form can mark them together.
func (r saveProfileReq) validate() error {
	var verr *pkgErrors.ValidationError
	add := func(field, msg string) {
		if verr == nil {
			verr = pkgErrors.NewValidationError(field, msg)
			return
		}
		verr.Add(field, msg)
	}

	if strings.TrimSpace(r.Name) == "" {
		add("name", "required")
	}
	if r.Tone != "" && !model.Tone(r.Tone).IsValid() {
		add("tone", "must be one of friendly, professional, witty, empathetic")
	}
	if r.ActionBias != "" && !model.ActionBias(r.ActionBias).IsValid() {
		add("action_bias", "must be one of engage, redirect, inform, apologize")
	}
	if verr == nil {
		return nil
	}
	return verr
}

func (r saveProfileReq) toInput() onboarding.SaveProfileInput {
	return onboarding.SaveProfileInput{
		Name:       r.Name,
		Persona:    r.Persona,
		Tone:       model.Tone(r.Tone),
		Signature:  r.Signature,
		ActionBias: model.ActionBias(r.ActionBias),
	}
}

type uploadAvatarReq struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func (r uploadAvatarReq) toInput() onboarding.UploadAvatarInput {
	return onboarding.UploadAvatarInput{
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Size:        r.Size,
		Reader:      r.Reader,
	}
}

type togglePlatformReq struct {
	Platform    string `json:"platform" binding:"required"`
	AccessToken string `json:"access_token"`
}

func (r togglePlatformReq) toInput() onboarding.TogglePlatformInput {
	return onboarding.TogglePlatformInput{
		Platform:    model.Platform(r.Platform),
		AccessToken: r.AccessToken,
	}
}

type profileResp struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	Persona    string `json:"persona"`
	Tone       string `json:"tone"`
	Signature  string `json:"signature"`
	ActionBias string `json:"action_bias"`
}

type connectionResp struct {
	Platform    string     `json:"platform"`
	Label       string     `json:"label"`
	Icon        string     `json:"icon"`
	Connected   bool       `json:"connected"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

type progressResp struct {
	Step           string           `json:"step"`
	Profile        profileResp      `json:"profile"`
	Connections    []connectionResp `json:"connections"`
	ConnectedCount int              `json:"connected_count"`
	CanContinue    bool             `json:"can_continue"`
}

func (h *handler) newProgressResp(p onboarding.Progress) progressResp {
	conns := make([]connectionResp, 0, len(p.Connections))
	for _, c := range p.Connections {
		info := model.PlatformInfo(c.Platform)
		conns = append(conns, connectionResp{
			Platform:    string(c.Platform),
			Label:       info.Label,
			Icon:        info.Icon,
			Connected:   c.Connected,
			ConnectedAt: c.ConnectedAt,
		})
	}

	connected := p.ConnectedCount()
	canContinue := false
	switch p.Step {
	case model.StepProfileSetup:
		canContinue = p.Profile.Name != ""
	case model.StepPlatformConnect:
		canContinue = connected > 0
	}

	return progressResp{
		Step: string(p.Step),
		Profile: profileResp{
			Name:       p.Profile.Name,
			Avatar:     p.AvatarURL,
			Persona:    p.Profile.Persona,
			Tone:       string(p.Profile.Tone),
			Signature:  p.Profile.Signature,
			ActionBias: string(p.Profile.ActionBias),
		},
		Connections:    conns,
		ConnectedCount: connected,
		CanContinue:    canContinue,
	}
}
