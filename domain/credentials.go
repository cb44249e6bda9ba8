package domain

// CredentialPair is the access/refresh token bundle identifying a session to
// the server. Both fields are opaque to the client: they are stored together,
// attached to requests, and cleared together. A pair with only one field set
// is never observable.
type CredentialPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (p CredentialPair) IsZero() bool {
	return p.Access == "" && p.Refresh == ""
}
