package usecase

import (
	"context"
	"fmt"
	"strings"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

const suggestPrompt = `You write short replies to social media comments on behalf of a content creator.
Creator name: %s
Persona: %s
Tone: %s
Goal of the reply: %s
Reply intent: %s
Example reply: %s

Write %d alternative replies%s. One reply per line, no numbering, no quotes.`

// Suggest - Personalised suggestions for the current intent, canned ones when the LLM is unavailable
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope) (reply.Draft, error) {
	d, err := uc.loadDraft(ctx, sc)
	if err != nil {
		return reply.Draft{}, err
	}

	suggestions := reply.CannedReplies(d.Intent)
	if uc.llm != nil {
		p := uc.profile(ctx, sc)
		out, err := uc.llm.Generate(ctx, buildSuggestPrompt(p, d))
		if err != nil {
			uc.l.Warnf(ctx, "reply.usecase.Suggest: Generate failed, using canned replies: %v", err)
		} else if parsed := parseSuggestions(out, p.Signature); len(parsed) > 0 {
			suggestions = parsed
		}
	}

	if err := d.SetSuggestions(suggestions); err != nil {
		return reply.Draft{}, err
	}
	if err := uc.saveDraft(ctx, sc, d); err != nil {
		return reply.Draft{}, err
	}
	return d, nil
}

func buildSuggestPrompt(p model.Profile, d reply.Draft) string {
	name := p.Name
	if name == "" {
		name = "the creator"
	}
	tone := p.Tone
	if tone == "" {
		tone = model.ToneFriendly
	}
	bias := p.ActionBias
	if bias == "" {
		bias = model.ActionBiasEngage
	}
	persona := p.Persona
	if persona == "" {
		persona = "not provided"
	}
	to := ""
	if !d.Bulk && d.AuthorName != "" {
		to = " addressed to " + d.AuthorName
	}
	return fmt.Sprintf(suggestPrompt,
		name, persona, tone, model.ActionBiasInfo(bias).Description, d.Intent,
		reply.CannedReplies(d.Intent)[0], reply.SuggestionCount, to,
	)
}

// parseSuggestions keeps non-empty lines, strips list markers and appends the signature.
func parseSuggestions(out, signature string) []string {
	var res []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.Trim(line, `"`)
		if line == "" {
			continue
		}
		if signature != "" && !strings.HasSuffix(line, signature) {
			line += " " + signature
		}
		res = append(res, line)
		if len(res) == reply.SuggestionCount {
			break
		}
	}
	return res
}
