package constraints

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderContentType   = "Content-Type"
	ContextKeyRequestID = "request_id"
	ContextKeySession   = "session"
)
