// file: internals/stores/stores.go
package stores

import (
	"schoolhub_backend/internals/features/admin/tables"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	attendanceRoute "schoolhub_backend/internals/features/school/attendance/route"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	classRoute "schoolhub_backend/internals/features/school/classes/route"
	courseModel "schoolhub_backend/internals/features/school/courses/model"
	courseRoute "schoolhub_backend/internals/features/school/courses/route"
	enrollmentModel "schoolhub_backend/internals/features/school/enrollments/model"
	enrollmentRoute "schoolhub_backend/internals/features/school/enrollments/route"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	schoolRoute "schoolhub_backend/internals/features/school/schools/route"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	studentRoute "schoolhub_backend/internals/features/school/students/route"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
	teacherRoute "schoolhub_backend/internals/features/school/teachers/route"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	userModel "schoolhub_backend/internals/features/users/user/model"
	userRoute "schoolhub_backend/internals/features/users/user/route"

	"gorm.io/gorm"
)

// Stores holds one typed repository per entity.
type Stores struct {
	Schools     tables.Repository[schoolModel.SchoolModel]
	Students    tables.Repository[studentModel.StudentModel]
	Teachers    tables.Repository[teacherModel.TeacherModel]
	Classes     tables.Repository[classModel.ClassModel]
	Courses     tables.Repository[courseModel.CourseModel]
	Enrollments tables.Repository[enrollmentModel.EnrollmentModel]
	Attendance  tables.Repository[attendanceModel.AttendanceModel]
	Users       tables.Repository[userModel.UserModel]

	db *gorm.DB
}

func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Schools:     tables.NewGormRepository[schoolModel.SchoolModel](db),
		Students:    tables.NewGormRepository[studentModel.StudentModel](db),
		Teachers:    tables.NewGormRepository[teacherModel.TeacherModel](db),
		Classes:     tables.NewGormRepository[classModel.ClassModel](db),
		Courses:     tables.NewGormRepository[courseModel.CourseModel](db),
		Enrollments: tables.NewGormRepository[enrollmentModel.EnrollmentModel](db),
		Attendance:  tables.NewGormRepository[attendanceModel.AttendanceModel](db),
		Users:       tables.NewGormRepository[userModel.UserModel](db),
		db:          db,
	}
}

func NewMemoryStores() *Stores {
	return &Stores{
		Schools:     tables.NewMemoryRepository[schoolModel.SchoolModel](),
		Students:    tables.NewMemoryRepository[studentModel.StudentModel](),
		Teachers:    tables.NewMemoryRepository[teacherModel.TeacherModel](),
		Classes:     tables.NewMemoryRepository[classModel.ClassModel](),
		Courses:     tables.NewMemoryRepository[courseModel.CourseModel](),
		Enrollments: tables.NewMemoryRepository[enrollmentModel.EnrollmentModel](),
		Attendance:  tables.NewMemoryRepository[attendanceModel.AttendanceModel](),
		Users:       tables.NewMemoryRepository[userModel.UserModel](),
	}
}

// Registry exposes every entity as an admin table, in menu order.
func (s *Stores) Registry() *tables.Registry {
	return tables.NewRegistry(
		schoolRoute.Table(s.Schools),
		studentRoute.Table(s.Students),
		teacherRoute.Table(s.Teachers),
		classRoute.Table(s.Classes),
		courseRoute.Table(s.Courses),
		enrollmentRoute.Table(s.Enrollments),
		attendanceRoute.Table(s.Attendance),
		userRoute.Table(s.Users),
	)
}

// UserRepository backs the auth flows; postgres looks users up by an indexed query.
func (s *Stores) UserRepository() authRepo.UserRepository {
	if s.db != nil {
		return authRepo.NewGormUserRepository(s.db)
	}
	return authRepo.NewStoreUserRepository(s.Users)
}
