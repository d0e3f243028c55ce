package entity

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

type Profile struct {
	Base
	FullName   string  `db:"full_name"`
	Email      string  `db:"email"`
	Role       Role    `db:"role"`
	StudentID  *string `db:"student_id"`
	Department string  `db:"department"`
}
