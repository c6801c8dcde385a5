package reply

import "strings"

// Intent is the purpose of a reply; it selects the suggestion list.
type Intent string

const (
	IntentThank       Intent = "thank"
	IntentClarify     Intent = "clarify"
	IntentRedirect    Intent = "redirect"
	IntentAcknowledge Intent = "acknowledge"
)

var Intents = []Intent{IntentThank, IntentClarify, IntentRedirect, IntentAcknowledge}

func (i Intent) IsValid() bool {
	_, ok := cannedReplies[i]
	return ok
}

var cannedReplies = map[Intent][]string{
	IntentThank: {
		"Thanks so much for your comment! I really appreciate you taking the time to share your thoughts.",
		"Thank you for the feedback! It means a lot to hear from viewers like you.",
	},
	IntentClarify: {
		"Great question! To clarify, what I meant in the video was that...",
		"I understand your confusion. Let me explain in more detail what I was trying to convey.",
	},
	IntentRedirect: {
		"I actually covered this topic in more detail in my previous video. Check it out here: [link]",
		"For more information on this, I recommend checking out the resources I've linked in the description.",
	},
	IntentAcknowledge: {
		"I appreciate your feedback on this. I'll definitely take this into consideration for future content.",
		"You've raised some valid points. I'll be addressing these concerns in an upcoming video.",
	},
}

// CannedReplies returns a copy of the suggestions for an intent.
func CannedReplies(i Intent) []string {
	return append([]string(nil), cannedReplies[i]...)
}

// Tool is a deterministic rewrite of the reply buffer.
type Tool string

const (
	ToolRephrase     Tool = "rephrase"
	ToolShorten      Tool = "shorten"
	ToolExpand       Tool = "expand"
	ToolCasual       Tool = "casual"
	ToolProfessional Tool = "professional"
)

var Tools = []Tool{ToolRephrase, ToolShorten, ToolExpand, ToolCasual, ToolProfessional}

// Transform applies the tool to r. Unknown tools return false.
func (t Tool) Transform(r string) (string, bool) {
	switch t {
	case ToolRephrase:
		return "I've rephrased this: " + r, true
	case ToolShorten:
		words := strings.Fields(r)
		return strings.Join(words[:len(words)/2], " ") + "...", true
	case ToolExpand:
		return r + " I hope this helps clarify things. Let me know if you have any other questions!", true
	case ToolCasual:
		return "Hey there! " + strings.Replace(r, ".", "!", 1) + " Thanks for reaching out!", true
	case ToolProfessional:
		return "Thank you for your comment. " + r + " We appreciate your engagement.", true
	default:
		return r, false
	}
}
