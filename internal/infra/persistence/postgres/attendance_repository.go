package postgres

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// CreateAttendance persists a new attendance interval.
func (repo *attendanceRepository) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := fromAttendanceDomain(attendance)

	if err := repo.db.WithContext(ctx).Create(attendanceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid employee reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attendance")
	}

	attendance.ID = attendanceM.ID
	attendance.CreatedAt = attendanceM.CreatedAt
	attendance.UpdatedAt = attendanceM.UpdatedAt

	return nil
}

// FindAttendanceByID retrieves an attendance record by its unique ID,
// including its sub-shifts.
func (repo *attendanceRepository) FindAttendanceByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	var attendanceM model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("check_in ASC")
		}).
		Where("id = ?", id).
		First(&attendanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find attendance by ID")
	}

	return toAttendanceDomain(&attendanceM), nil
}

// FindLatestAttendance retrieves the employee's most recent attendance record
// by check-in time.
func (repo *attendanceRepository) FindLatestAttendance(ctx context.Context, employeeID uuid.UUID) (*entity.Attendance, error) {
	var attendanceM model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("check_in ASC")
		}).
		Where("employee_id = ?", employeeID).
		Order("check_in DESC").
		First(&attendanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest attendance")
	}

	return toAttendanceDomain(&attendanceM), nil
}

// FindAttendancesByEmployee retrieves an employee's attendance records
// ordered by check-in descending.
func (repo *attendanceRepository) FindAttendancesByEmployee(ctx context.Context, employeeID uuid.UUID, limit int) ([]*entity.Attendance, error) {
	var attendanceModels []*model.AttendanceModel

	query := repo.db.WithContext(ctx).
		Preload("Shifts", func(db *gorm.DB) *gorm.DB {
			return db.Order("check_in ASC")
		}).
		Where("employee_id = ?", employeeID).
		Order("check_in DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&attendanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attendances by employee")
	}

	attendances := make([]*entity.Attendance, 0, len(attendanceModels))
	for _, attendanceM := range attendanceModels {
		attendances = append(attendances, toAttendanceDomain(attendanceM))
	}

	return attendances, nil
}

// UpdateAttendance persists changes to an existing attendance record.
func (repo *attendanceRepository) UpdateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := fromAttendanceDomain(attendance)

	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ?", attendanceM.ID).
		Select("check_in", "check_out", "multi_shift").
		Updates(attendanceM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update attendance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// CreateShift appends a sub-shift to a multi-shift attendance record.
func (repo *attendanceRepository) CreateShift(ctx context.Context, shift *entity.Shift) error {
	shiftM := fromShiftDomain(shift)

	if err := repo.db.WithContext(ctx).Create(shiftM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid attendance reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shift")
	}

	shift.ID = shiftM.ID

	return nil
}

// UpdateShift persists changes to an existing sub-shift.
func (repo *attendanceRepository) UpdateShift(ctx context.Context, shift *entity.Shift) error {
	shiftM := fromShiftDomain(shift)

	result := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Where("id = ?", shiftM.ID).
		Select("check_in", "check_out").
		Updates(shiftM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shift")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// FindShiftsByAttendance retrieves the sub-shifts of an attendance record
// ordered by check-in ascending.
func (repo *attendanceRepository) FindShiftsByAttendance(ctx context.Context, attendanceID uuid.UUID) ([]*entity.Shift, error) {
	var shiftModels []*model.ShiftModel

	if err := repo.db.WithContext(ctx).
		Where("attendance_id = ?", attendanceID).
		Order("check_in ASC").
		Find(&shiftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shifts by attendance")
	}

	shifts := make([]*entity.Shift, 0, len(shiftModels))
	for _, shiftM := range shiftModels {
		shifts = append(shifts, toShiftDomain(shiftM))
	}

	return shifts, nil
}

// DeleteAttendance removes an attendance record and its sub-shifts.
func (repo *attendanceRepository) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.ShiftModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete attendance shifts")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AttendanceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete attendance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAttendanceDomain converts a GORM AttendanceModel to a domain Attendance entity.
func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	if data == nil {
		return nil
	}

	shifts := make([]entity.Shift, 0, len(data.Shifts))
	for i := range data.Shifts {
		shifts = append(shifts, *toShiftDomain(&data.Shifts[i]))
	}

	return &entity.Attendance{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		CheckIn:    data.CheckIn.UTC(),
		CheckOut:   utcTimePtr(data.CheckOut),
		MultiShift: data.MultiShift,
		Shifts:     shifts,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAttendanceDomain converts a domain Attendance entity to a GORM AttendanceModel.
// Sub-shifts are persisted through their own operations, not through the parent row.
func fromAttendanceDomain(data *entity.Attendance) *model.AttendanceModel {
	if data == nil {
		return nil
	}

	return &model.AttendanceModel{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		CheckIn:    data.CheckIn.UTC(),
		CheckOut:   utcTimePtr(data.CheckOut),
		MultiShift: data.MultiShift,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toShiftDomain converts a GORM ShiftModel to a domain Shift entity.
func toShiftDomain(data *model.ShiftModel) *entity.Shift {
	if data == nil {
		return nil
	}

	return &entity.Shift{
		ID:           data.ID,
		AttendanceID: data.AttendanceID,
		CheckIn:      data.CheckIn.UTC(),
		CheckOut:     utcTimePtr(data.CheckOut),
	}
}

// fromShiftDomain converts a domain Shift entity to a GORM ShiftModel.
func fromShiftDomain(data *entity.Shift) *model.ShiftModel {
	if data == nil {
		return nil
	}

	return &model.ShiftModel{
		ID:           data.ID,
		AttendanceID: data.AttendanceID,
		CheckIn:      data.CheckIn.UTC(),
		CheckOut:     utcTimePtr(data.CheckOut),
	}
}

// utcTimePtr normalizes an optional timestamp to UTC.
func utcTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	utc := t.UTC()

	return &utc
}
