package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeacherRepository    *TeacherRepository
	ClassRepository      *ClassRepository
	StudentRepository    *StudentRepository
	AssignmentRepository *AssignmentRepository
	NoteRepository       *NoteRepository
	FeeRepository        *FeeRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeacherRepository:    NewTeacherRepository(db),
		ClassRepository:      NewClassRepository(db),
		StudentRepository:    NewStudentRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		NoteRepository:       NewNoteRepository(db),
		FeeRepository:        NewFeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
