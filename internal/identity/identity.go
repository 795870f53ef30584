package identity

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of capability tags the platform knows about.
// The backend assigns a role at registration and never changes it; the
// gateway only ever reads it. Values are kept in Spanish because that is
// what the backend stores and returns.
type Role string

const (
	RoleStudent  Role = "estudiante"
	RoleEmployer Role = "empleador"
	RoleAdmin    Role = "administrador"
)

// ParseRole validates a raw role string coming off the wire. Unknown
// roles are an error at decode time, not a silent redirect later.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("identity: unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated user's profile as the backend reports it.
// Only the fields the gateway itself needs are promoted; everything else
// (student transcripts, company profiles, ...) stays in Raw and is passed
// through to pages untouched.
type Identity struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      Role

	// Raw is the full profile document as returned by the backend.
	Raw json.RawMessage
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID        string `json:"_id"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	role, err := ParseRole(doc.Role)
	if err != nil {
		return err
	}

	i.ID = doc.ID
	i.Email = doc.Email
	i.FirstName = doc.FirstName
	i.LastName = doc.LastName
	i.Phone = doc.Phone
	i.Role = role
	i.Raw = append(i.Raw[:0], data...)
	return nil
}

// MarshalJSON re-emits the backend's document so role-specific fields
// survive the round trip through the gateway.
func (i Identity) MarshalJSON() ([]byte, error) {
	if len(i.Raw) > 0 {
		return i.Raw, nil
	}
	return json.Marshal(map[string]string{
		"_id":       i.ID,
		"email":     i.Email,
		"firstName": i.FirstName,
		"lastName":  i.LastName,
		"phone":     i.Phone,
		"role":      string(i.Role),
	})
}
