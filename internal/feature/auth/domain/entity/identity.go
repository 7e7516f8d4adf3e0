package entity

// Identity is an authenticated account: exactly one of a Student or an Admin.
// The zero value is not a valid identity.
type Identity struct {
	kind    Kind
	student *Student
	admin   *Admin
}

// StudentIdentity wraps a student account.
func StudentIdentity(s *Student) Identity {
	return Identity{kind: KindStudent, student: s}
}

// AdminIdentity wraps an admin account.
func AdminIdentity(a *Admin) Identity {
	return Identity{kind: KindAdmin, admin: a}
}

// Kind reports which account table the identity belongs to.
func (i Identity) Kind() Kind { return i.kind }

// IsZero reports whether the identity is unset.
func (i Identity) IsZero() bool { return i.student == nil && i.admin == nil }

// ID returns the account id within its kind's table.
func (i Identity) ID() uint {
	return Match(i,
		func(s *Student) uint { return s.ID },
		func(a *Admin) uint { return a.ID },
	)
}

// Email returns the login email.
func (i Identity) Email() string {
	return Match(i,
		func(s *Student) string { return s.Email },
		func(a *Admin) string { return a.Email },
	)
}

// Principal returns the (kind, id) pair bound to tokens.
func (i Identity) Principal() Principal {
	return Principal{Kind: i.kind, ID: i.ID()}
}

// Match calls onStudent or onAdmin depending on the identity's kind.
// It panics on the zero Identity.
func Match[T any](i Identity, onStudent func(*Student) T, onAdmin func(*Admin) T) T {
	switch i.kind {
	case KindStudent:
		return onStudent(i.student)
	case KindAdmin:
		return onAdmin(i.admin)
	}
	panic("entity: Match on zero Identity")
}

// Principal is what a bearer token resolves to.
type Principal struct {
	Kind Kind
	ID   uint
}

// IsStudent reports whether p is the student with the given id.
func (p Principal) IsStudent(id uint) bool {
	return p.Kind == KindStudent && p.ID == id
}
