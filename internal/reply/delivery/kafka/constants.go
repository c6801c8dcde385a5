package kafka

const (
	TopicReplyDispatch         = "comment.reply.dispatch"
	ConsumerGroupReplyDispatch = "comment-consumer-reply-dispatch"

	// EventReplyDispatch is the event-type header value of ReplyDispatchMessage.
	EventReplyDispatch = "reply.dispatch.v1"
)
