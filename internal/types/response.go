package types

// Response is what the HTTP collaborator hands back: the status code and
// the decoded JSON body (nil when the body was empty or not a JSON object).
type Response struct {
	Status int
	Body   Params
}

// Success reports a 2xx status.
func (r Response) Success() bool {
	return r.Status >= 200 && r.Status < 300
}
