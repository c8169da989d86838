package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	CommentId      = string
	CommentContent = string

	ReplyId      = string
	ReplyContent = string
)

// Id prefixes used by storage when minting new identifiers.
const (
	UserIdPrefix    = "user-"
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
)
