package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f24tech/edumate/internal/app/migrations"
	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/db"
	"github.com/f24tech/edumate/internal/pkg/dberrors"
	"github.com/f24tech/edumate/internal/seed"
)

// testPool connects to the database named by TEST_DATABASE_URL, applies the
// schema, and truncates all tables so each test starts clean. Tests are
// skipped when no database is available.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(&db.PostgresDB{Pool: pool}).EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `TRUNCATE teachers, classes, students, assignments, notes, fees, attendance RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func createClass(t *testing.T, repos *Repositories, name string) *models.Class {
	t.Helper()
	class := &models.Class{Name: name}
	require.NoError(t, repos.ClassRepository.Create(context.Background(), class))
	require.NotZero(t, class.ID)
	return class
}

func createStudent(t *testing.T, repos *Repositories, name string, classID int64) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, ClassID: classID}
	require.NoError(t, repos.StudentRepository.Create(context.Background(), student))
	require.NotZero(t, student.ID)
	return student
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeedDefaultTeacherIsIdempotent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	lgr := zerolog.Nop()

	require.NoError(t, seed.EnsureDefaultTeacher(ctx, pool, lgr))
	require.NoError(t, seed.EnsureDefaultTeacher(ctx, pool, lgr))

	repo := NewTeacherRepository(pool)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	teacher, err := repo.GetByUsername(ctx, "teacher")
	require.NoError(t, err)
	assert.Equal(t, "teacher", teacher.Username)
	assert.NotEqual(t, "1234", teacher.Password)
}

func TestTeacherGetByUsernameUnknown(t *testing.T) {
	pool := testPool(t)

	_, err := NewTeacherRepository(pool).GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

// Deleting a class removes its students, assignments and notes, and
// through the students their fees and attendance. Unrelated rows survive.
func TestDeleteClassCascades(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	doomed := createClass(t, repos, "Grade 5")
	survivor := createClass(t, repos, "Grade 6")

	doomedStudent := createStudent(t, repos, "Amir", doomed.ID)
	survivingStudent := createStudent(t, repos, "Bina", survivor.ID)

	require.NoError(t, repos.AssignmentRepository.Create(ctx, &models.Assignment{Title: "Algebra worksheet", ClassID: doomed.ID}))
	require.NoError(t, repos.NoteRepository.Create(ctx, &models.Note{Title: "Photosynthesis summary", ClassID: doomed.ID}))
	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: doomedStudent.ID, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPending}))
	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: survivingStudent.ID, Amount: 600, FeeType: "Tuition", Status: models.FeeStatusPending}))
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: doomedStudent.ID, ClassID: doomed.ID, Date: date(2024, 3, 1), Status: models.AttendanceStatusPresent}))

	require.NoError(t, repos.ClassRepository.Delete(ctx, doomed.ID))

	students, err := repos.StudentRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Bina", students[0].Name)

	assignments, err := repos.AssignmentRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	notes, err := repos.NoteRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, notes)

	fees, err := repos.FeeRepository.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, survivingStudent.ID, fees[0].StudentID)

	attendance, err := repos.AttendanceRepository.GetAll(ctx, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, attendance)
}

func TestDeleteStudentCascadesFeesAndAttendance(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)

	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: student.ID, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPending}))
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: date(2024, 3, 1), Status: models.AttendanceStatusPresent}))

	require.NoError(t, repos.StudentRepository.Delete(ctx, student.ID))

	fees, err := repos.FeeRepository.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, fees)

	attendance, err := repos.AttendanceRepository.GetAll(ctx, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, attendance)

	// The class itself is untouched.
	classes, err := repos.ClassRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 1)
}

func TestAttendanceTripleUniqueness(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)
	day := date(2024, 3, 1)

	first := &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: day, Status: models.AttendanceStatusPresent}
	require.NoError(t, repos.AttendanceRepository.Create(ctx, first))

	dup := &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: day, Status: models.AttendanceStatusAbsent}
	err := repos.AttendanceRepository.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, dberrors.IsUniqueViolation(err, migrations.AttendanceUniqueConstraint))

	// The first record keeps its original status.
	records, err := repos.AttendanceRepository.GetAll(ctx, class.ID, &day)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceStatusPresent, records[0].Status)

	// A different date for the same student and class is fine.
	nextDay := date(2024, 3, 2)
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: nextDay, Status: models.AttendanceStatusLate}))
}

func TestUpdateOntoTakenTripleFails(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)

	first := &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: date(2024, 3, 1), Status: models.AttendanceStatusPresent}
	second := &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: date(2024, 3, 2), Status: models.AttendanceStatusPresent}
	require.NoError(t, repos.AttendanceRepository.Create(ctx, first))
	require.NoError(t, repos.AttendanceRepository.Create(ctx, second))

	second.Date = first.Date
	err := repos.AttendanceRepository.Update(ctx, second)
	assert.True(t, dberrors.IsUniqueViolation(err, migrations.AttendanceUniqueConstraint))
}

// Updates and deletes naming an id that matches no row execute cleanly.
func TestUpdateAndDeleteUnknownIDSucceed(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	assert.NoError(t, repos.ClassRepository.Update(ctx, &models.Class{ID: 9999, Name: "Ghost"}))
	assert.NoError(t, repos.ClassRepository.Delete(ctx, 9999))
	assert.NoError(t, repos.FeeRepository.Delete(ctx, 9999))
}

func TestStudentListJoinsClassNameAndFilters(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	grade5 := createClass(t, repos, "Grade 5")
	grade6 := createClass(t, repos, "Grade 6")
	createStudent(t, repos, "Bina", grade5.ID)
	createStudent(t, repos, "Amir", grade5.ID)
	createStudent(t, repos, "Chitra", grade6.ID)

	all, err := repos.StudentRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by name ascending.
	assert.Equal(t, []string{"Amir", "Bina", "Chitra"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Equal(t, "Grade 5", all[0].ClassName)

	filtered, err := repos.StudentRepository.GetAll(ctx, grade6.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Chitra", filtered[0].Name)
}

func TestFeeListJoinsNamesAndFiltersByStatus(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)

	jan := date(2024, 1, 31)
	feb := date(2024, 2, 29)
	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: student.ID, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPending, DueDate: &jan}))
	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: student.ID, Amount: 200, FeeType: "Library", Status: models.FeeStatusPaid, DueDate: &feb, PaidDate: &feb}))
	require.NoError(t, repos.FeeRepository.Create(ctx, &models.Fee{StudentID: student.ID, Amount: 100, FeeType: "Sports", Status: models.FeeStatusPending}))

	all, err := repos.FeeRepository.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent due date first; fees without one sort last.
	assert.Equal(t, "Library", all[0].FeeType)
	assert.Equal(t, "Amir", all[0].StudentName)
	assert.Equal(t, "Grade 5", all[0].ClassName)
	assert.Equal(t, "Sports", all[2].FeeType)

	paid, err := repos.FeeRepository.GetAll(ctx, models.FeeStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, models.FeeStatusPaid, paid[0].Status)
	require.NotNil(t, paid[0].PaidDate)
	assert.Equal(t, feb, paid[0].PaidDate.UTC())
}

func TestFeeStatusDefaultsAtStoreLevel(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)

	// An unconstrained status value is rejected by the check constraint.
	err := repos.FeeRepository.Create(ctx, &models.Fee{StudentID: student.ID, Amount: 500, FeeType: "Tuition", Status: "forgiven"})
	assert.Error(t, err)
}

func TestFeeCreateUnknownStudentFailsFK(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)

	err := repos.FeeRepository.Create(context.Background(), &models.Fee{StudentID: 9999, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPending})
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err))
}

func TestAttendanceListFilters(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	grade5 := createClass(t, repos, "Grade 5")
	grade6 := createClass(t, repos, "Grade 6")
	amir := createStudent(t, repos, "Amir", grade5.ID)
	bina := createStudent(t, repos, "Bina", grade6.ID)

	day1 := date(2024, 3, 1)
	day2 := date(2024, 3, 2)
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: amir.ID, ClassID: grade5.ID, Date: day1, Status: models.AttendanceStatusPresent}))
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: amir.ID, ClassID: grade5.ID, Date: day2, Status: models.AttendanceStatusLate}))
	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: bina.ID, ClassID: grade6.ID, Date: day1, Status: models.AttendanceStatusAbsent}))

	all, err := repos.AttendanceRepository.GetAll(ctx, 0, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent date first.
	assert.Equal(t, day2, all[0].Date.UTC())
	assert.Equal(t, "Amir", all[0].StudentName)
	assert.Equal(t, "Grade 5", all[0].ClassName)

	byClass, err := repos.AttendanceRepository.GetAll(ctx, grade6.ID, nil)
	require.NoError(t, err)
	require.Len(t, byClass, 1)
	assert.Equal(t, "Bina", byClass[0].StudentName)

	byBoth, err := repos.AttendanceRepository.GetAll(ctx, grade5.ID, &day1)
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, models.AttendanceStatusPresent, byBoth[0].Status)
}

func TestAssignmentAndNoteOrdering(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")

	early := date(2024, 6, 1)
	late := date(2024, 6, 30)
	require.NoError(t, repos.AssignmentRepository.Create(ctx, &models.Assignment{Title: "Early", ClassID: class.ID, DueDate: &early}))
	require.NoError(t, repos.AssignmentRepository.Create(ctx, &models.Assignment{Title: "Late", ClassID: class.ID, DueDate: &late}))
	require.NoError(t, repos.AssignmentRepository.Create(ctx, &models.Assignment{Title: "Dateless", ClassID: class.ID}))

	assignments, err := repos.AssignmentRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, "Late", assignments[0].Title)
	assert.Equal(t, "Grade 5", assignments[0].ClassName)
	// Assignments without a due date sort after every dated one.
	assert.Equal(t, "Dateless", assignments[2].Title)

	require.NoError(t, repos.NoteRepository.Create(ctx, &models.Note{Title: "First", ClassID: class.ID}))
	require.NoError(t, repos.NoteRepository.Create(ctx, &models.Note{Title: "Second", ClassID: class.ID}))

	notes, err := repos.NoteRepository.GetAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	// Newest first; created_at breaks the tie by insertion order.
	assert.Equal(t, "Second", notes[0].Title)
}

// End to end through the repositories: enroll, record, pay, then tear the
// class down and confirm nothing owned by it remains.
func TestRecordLifecycleScenario(t *testing.T) {
	pool := testPool(t)
	repos := NewRepositories(pool)
	ctx := context.Background()

	class := createClass(t, repos, "Grade 5")
	student := createStudent(t, repos, "Amir", class.ID)

	due := date(2024, 1, 31)
	fee := &models.Fee{StudentID: student.ID, Amount: 500, FeeType: "Tuition", Status: models.FeeStatusPending, DueDate: &due}
	require.NoError(t, repos.FeeRepository.Create(ctx, fee))

	paidOn := date(2024, 1, 15)
	fee.Status = models.FeeStatusPaid
	fee.PaidDate = &paidOn
	require.NoError(t, repos.FeeRepository.Update(ctx, fee))

	fees, err := repos.FeeRepository.GetAll(ctx, models.FeeStatusPaid)
	require.NoError(t, err)
	require.Len(t, fees, 1)

	require.NoError(t, repos.AttendanceRepository.Create(ctx, &models.Attendance{StudentID: student.ID, ClassID: class.ID, Date: date(2024, 3, 1), Status: models.AttendanceStatusPresent}))

	require.NoError(t, repos.ClassRepository.Delete(ctx, class.ID))

	for name, count := range map[string]string{
		"students":   "SELECT count(*) FROM students",
		"fees":       "SELECT count(*) FROM fees",
		"attendance": "SELECT count(*) FROM attendance",
	} {
		var n int64
		require.NoError(t, pool.QueryRow(ctx, count).Scan(&n))
		assert.Zero(t, n, "%s should be empty after class delete", name)
	}
}
