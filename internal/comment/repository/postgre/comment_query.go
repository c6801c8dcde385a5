package postgre

import "comment-srv/internal/comment/repository"

const commentColumns = `id, post_id, user_id, platform, author_name, author_avatar, text, time_label,
	emotion, sentiment, category, flagged, needs_attention, archived, saved, important,
	likes, replies, position, created_at`

// flagColumn whitelists the columns an UPDATE may touch.
func flagColumn(f repository.Flag) (string, bool) {
	switch f {
	case repository.FlagFlagged, repository.FlagArchived, repository.FlagSaved, repository.FlagImportant:
		return string(f), true
	default:
		return "", false
	}
}
