package appwrite

// Session is an authenticated email/password session. Secret is only present
// on creation and is what subsequent requests authenticate with.
type Session struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Secret   string `json:"secret"`
	Expire   string `json:"expire"`
	Provider string `json:"provider"`
}

// User is the account behind the current session.
type User struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateEmailSession logs in with email and password.
func (c *Client) CreateEmailSession(email, password string) (*Session, error) {
	resp, err := c.doJSON("POST", "/account/sessions/email", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	s, err := decodeResponse[Session](resp)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession invalidates a session; pass "current" for the active one.
func (c *Client) DeleteSession(sessionID string) error {
	resp, err := c.doJSON("DELETE", "/account/sessions/"+sessionID, nil)
	if err != nil {
		return err
	}
	return drainResponse(resp)
}

// Me returns the user behind the current session. Failing here is the normal
// logged-out signal, not an exceptional condition.
func (c *Client) Me() (*User, error) {
	resp, err := c.doJSON("GET", "/account", nil)
	if err != nil {
		return nil, err
	}
	u, err := decodeResponse[User](resp)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
