package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	created       []*models.Student
	listedClassID int64
	students      []*models.Student
	err           error
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, student)
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, _ *models.Student) error { return f.err }
func (f *fakeStudentStore) Delete(_ context.Context, _ int64) error           { return f.err }

func (f *fakeStudentStore) GetAll(_ context.Context, classID int64) ([]*models.Student, error) {
	f.listedClassID = classID
	if f.err != nil {
		return nil, f.err
	}
	return f.students, nil
}

func TestCreateStudent(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	student := &models.Student{Name: "Amir", ClassID: 1, Email: "amir@example.com"}
	require.NoError(t, svc.CreateStudent(context.Background(), student))
	assert.Len(t, store.created, 1)
}

func TestCreateStudentValidation(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	cases := map[string]*models.Student{
		"missing name":  {ClassID: 1},
		"blank name":    {Name: "  ", ClassID: 1},
		"missing class": {Name: "Amir"},
		"nil student":   nil,
	}

	for name, student := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.CreateStudent(context.Background(), student)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Empty(t, store.created)
}

// Optional fields may be empty without affecting validity.
func TestCreateStudentOptionalFieldsMayBeEmpty(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	err := svc.CreateStudent(context.Background(), &models.Student{Name: "Amir", ClassID: 2})
	assert.NoError(t, err)
}

func TestListStudentsPassesClassFilter(t *testing.T) {
	store := &fakeStudentStore{students: []*models.Student{{ID: 1, Name: "Amir", ClassName: "Grade 5"}}}
	svc := NewStudentService(store)

	students, err := svc.ListStudents(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), store.listedClassID)
	assert.Len(t, students, 1)

	_, err = svc.ListStudents(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.listedClassID)
}
