package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendEmbed(ctx context.Context, opts MessageOptions) error {
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       opts.Title,
		Description: truncate(opts.Description, maxDescriptionLen),
		Color:       colorFor(opts.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Fields:      opts.Fields,
	}
	if opts.Footer != "" {
		embed.Footer = &EmbedFooter{Text: opts.Footer}
	}
	return d.send(ctx, WebhookPayload{Username: d.config.Username, Embeds: []Embed{embed}})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), maxFieldValueLen)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// send relies on pkg/http for retries on 429 and 5xx.
func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	resp, err := d.client.PostJSON(ctx, d.webhookURL(), payload, nil)
	if err == nil && !resp.OK() {
		err = fmt.Errorf("%w: %d", errUnexpectedCode, resp.StatusCode)
	}
	if err != nil && d.l != nil {
		d.l.Warnf(ctx, "pkg.discord.send: webhook delivery failed: %v", err)
	}
	return err
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
