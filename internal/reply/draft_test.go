package reply

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft(t *testing.T) {
	tcs := map[string]struct {
		ids           []string
		fromSelection bool
		wantBulk      bool
		wantIDs       []string
	}{
		"single":            {ids: []string{"c1"}, wantIDs: []string{"c1"}},
		"many":              {ids: []string{"c1", "c2"}, wantBulk: true, wantIDs: []string{"c1", "c2"}},
		"single selection":  {ids: []string{"c1"}, fromSelection: true, wantBulk: true, wantIDs: []string{"c1"}},
		"duplicates folded": {ids: []string{"c1", "", "c1"}, wantIDs: []string{"c1"}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d := NewDraft(tc.ids, tc.fromSelection, "Ana")
			assert.Equal(t, tc.wantBulk, d.Bulk)
			assert.Empty(t, cmp.Diff(tc.wantIDs, d.Recipients))
			assert.Equal(t, StageReviewing, d.Stage)
			assert.Equal(t, IntentThank, d.Intent)
			assert.Equal(t, cannedReplies[IntentThank][0], d.Buffer)
			assert.Equal(t, d.Buffer, d.Suggestion)
		})
	}
}

func TestChangeIntentDiscardsEdits(t *testing.T) {
	d := NewDraft([]string{"c1"}, false, "")
	require.NoError(t, d.Edit("my own words"))
	assert.Equal(t, StageEditing, d.Stage)

	require.NoError(t, d.ChangeIntent(IntentRedirect))
	assert.Equal(t, StageReviewing, d.Stage)
	assert.Equal(t, cannedReplies[IntentRedirect][0], d.Buffer)
	assert.False(t, d.Edited())

	assert.ErrorIs(t, d.ChangeIntent("insult"), ErrInvalidIntent)
	assert.Equal(t, IntentRedirect, d.Intent)
}

func TestSelectSuggestion(t *testing.T) {
	d := NewDraft([]string{"c1"}, false, "")
	require.NoError(t, d.SelectSuggestion(1))
	assert.Equal(t, cannedReplies[IntentThank][1], d.Buffer)
	assert.Equal(t, cannedReplies[IntentThank][1], d.Suggestion)

	assert.ErrorIs(t, d.SelectSuggestion(2), ErrInvalidSuggestion)
	assert.ErrorIs(t, d.SelectSuggestion(-1), ErrInvalidSuggestion)
}

func TestTransforms(t *testing.T) {
	r := "Thanks. That was great."
	tcs := []struct {
		tool Tool
		want string
	}{
		{ToolRephrase, "I've rephrased this: Thanks. That was great."},
		{ToolShorten, "Thanks. That..."},
		{ToolExpand, "Thanks. That was great. I hope this helps clarify things. Let me know if you have any other questions!"},
		{ToolCasual, "Hey there! Thanks! That was great. Thanks for reaching out!"},
		{ToolProfessional, "Thank you for your comment. Thanks. That was great. We appreciate your engagement."},
	}
	for _, tc := range tcs {
		t.Run(string(tc.tool), func(t *testing.T) {
			got, ok := tc.tool.Transform(r)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := Tool("translate").Transform(r)
	assert.False(t, ok)
}

func TestToolsStack(t *testing.T) {
	d := NewDraft([]string{"c1"}, false, "")
	require.NoError(t, d.Edit("one two three four"))
	require.NoError(t, d.ApplyTool(ToolShorten))
	shortOnly := d.Buffer

	require.NoError(t, d.Edit("one two three four"))
	require.NoError(t, d.ApplyTool(ToolExpand))
	require.NoError(t, d.ApplyTool(ToolShorten))
	assert.NotEqual(t, shortOnly, d.Buffer)
	assert.Equal(t, StageEditing, d.Stage)

	assert.ErrorIs(t, d.ApplyTool("translate"), ErrInvalidTool)
}

func TestShortenEmptyBuffer(t *testing.T) {
	got, ok := ToolShorten.Transform("")
	require.True(t, ok)
	assert.Equal(t, "...", got)
}

func TestSubmitLifecycle(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		d := NewDraft([]string{"c1"}, false, "")
		require.NoError(t, d.Edit("   "))
		assert.ErrorIs(t, d.BeginSubmit(), ErrEmptyReply)
		assert.Equal(t, StageEditing, d.Stage)
	})

	t.Run("fail restores exact draft", func(t *testing.T) {
		d := NewDraft([]string{"c1", "c2"}, false, "")
		require.NoError(t, d.ChangeIntent(IntentClarify))
		require.NoError(t, d.ApplyTool(ToolCasual))
		before := d

		require.NoError(t, d.BeginSubmit())
		assert.Equal(t, StageSubmitting, d.Stage)
		assert.ErrorIs(t, d.BeginSubmit(), ErrAlreadySubmitting)
		assert.ErrorIs(t, d.Edit("x"), ErrAlreadySubmitting)

		d.FailSubmit()
		assert.Empty(t, cmp.Diff(before, d))
	})

	t.Run("close discards", func(t *testing.T) {
		d := NewDraft([]string{"c1"}, false, "")
		require.NoError(t, d.BeginSubmit())
		d.Close()
		assert.Equal(t, Draft{Stage: StageClosed}, d)
		assert.ErrorIs(t, d.BeginSubmit(), ErrNoDraft)
	})
}

func TestReplyID(t *testing.T) {
	d := NewDraft([]string{"c-1", "c-2"}, false, "")
	d.SubmissionID = "sub-1"
	first := d.ReplyID("c-1")

	require.NoError(t, d.BeginSubmit())
	d.FailSubmit()
	assert.Equal(t, "sub-1", d.SubmissionID)
	assert.Equal(t, first, d.ReplyID("c-1"))
	assert.NotEqual(t, first, d.ReplyID("c-2"))

	require.NoError(t, d.Edit("Something else"))
	assert.NotEqual(t, first, d.ReplyID("c-1"))
}
