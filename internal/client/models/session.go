package models

// Session is the authenticated identity of the client. The zero value is
// the logged-out session.
type Session struct {
	Credential  string
	Role        Role
	DisplayName string
}

func (s Session) Authenticated() bool {
	return s.Credential != ""
}

func (s Session) IsTeacher() bool {
	return s.Authenticated() && s.Role == RoleTeacher
}

func (s Session) IsStudent() bool {
	return s.Authenticated() && s.Role == RoleStudent
}
