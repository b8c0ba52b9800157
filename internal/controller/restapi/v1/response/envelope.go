package response

// Envelope is the uniform body of every endpoint: { data, code, msg }.
// Code repeats the HTTP status; msg is omitted when empty; data is null
// on errors.
type Envelope struct {
	Data any    `json:"data"`
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
}
