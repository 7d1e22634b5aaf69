package domain

// Role is a user's type within the platform. Authorization decisions are
// made by the predicate functions below, never by flags on the User record.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleMentor  Role = "MENTOR"
	RoleAdmin   Role = "ADMIN"
	RoleReader  Role = "READER"
)

// ParseRole returns the Role for s, or RoleReader with ok=false when s is
// not one of the four enumerated values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleMentor, RoleAdmin, RoleReader:
		return Role(s), true
	}
	return RoleReader, false
}

// CanManageUsers reports whether the role may list, update, or delete
// other users.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanManageCourses reports whether the role may create, update, or publish
// courses.
func (r Role) CanManageCourses() bool {
	return r == RoleMentor || r == RoleAdmin
}

// CanEnroll reports whether the role may enroll in courses.
func (r Role) CanEnroll() bool {
	return r == RoleStudent || r == RoleMentor || r == RoleAdmin
}
