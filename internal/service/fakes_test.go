package service

import (
	"errors"

	"shift-planner-bot/internal/models"
)

// In-memory repository fakes for service tests.

type fakeShiftRepo struct {
	shifts map[uint]*models.Shift
	nextID uint
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[uint]*models.Shift), nextID: 1}
}

func (r *fakeShiftRepo) Create(shift *models.Shift) error {
	if !shift.IsValid() {
		return errors.New("invalid shift data")
	}
	shift.ID = r.nextID
	r.nextID++
	copied := *shift
	r.shifts[shift.ID] = &copied
	return nil
}

func (r *fakeShiftRepo) Update(shift *models.Shift) error {
	if _, ok := r.shifts[shift.ID]; !ok {
		return errors.New("shift not found")
	}
	copied := *shift
	r.shifts[shift.ID] = &copied
	return nil
}

func (r *fakeShiftRepo) Delete(id uint) error {
	if _, ok := r.shifts[id]; !ok {
		return errors.New("shift not found")
	}
	delete(r.shifts, id)
	return nil
}

func (r *fakeShiftRepo) GetByID(id uint) (*models.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeShiftRepo) ListByWeek(weekCode string) ([]models.Shift, error) {
	var out []models.Shift
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.shifts[id]; ok && s.WeekCode == weekCode {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListByEmployeeDay(weekCode string, employeeID uint, day models.DayName) ([]models.Shift, error) {
	var out []models.Shift
	for id := uint(1); id < r.nextID; id++ {
		s, ok := r.shifts[id]
		if ok && s.WeekCode == weekCode && s.EmployeeID == employeeID && s.Day == day {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) MarkWeekPublished(weekCode string) error {
	for _, s := range r.shifts {
		if s.WeekCode == weekCode {
			s.IsPublished = true
			s.IsSent = true
		}
	}
	return nil
}

type fakeStaticRepo struct {
	templates map[uint]*models.StaticShift
	nextID    uint
}

func newFakeStaticRepo() *fakeStaticRepo {
	return &fakeStaticRepo{templates: make(map[uint]*models.StaticShift), nextID: 1}
}

func (r *fakeStaticRepo) Create(template *models.StaticShift) error {
	if !template.IsValid() {
		return errors.New("invalid static shift data")
	}
	template.ID = r.nextID
	r.nextID++
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeStaticRepo) Update(template *models.StaticShift) error {
	if _, ok := r.templates[template.ID]; !ok {
		return errors.New("static shift not found")
	}
	copied := *template
	r.templates[template.ID] = &copied
	return nil
}

func (r *fakeStaticRepo) GetByID(id uint) (*models.StaticShift, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *fakeStaticRepo) GetAll(activeOnly bool) ([]models.StaticShift, error) {
	var out []models.StaticShift
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.templates[id]; ok && (!activeOnly || t.IsActive) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeStaticRepo) FindOpenByKey(employeeID uint, day models.DayName, startTime, endTime string) (*models.StaticShift, error) {
	for id := uint(1); id < r.nextID; id++ {
		t, ok := r.templates[id]
		if ok && t.EmployeeID == employeeID && t.Day == day &&
			t.StartTime == startTime && t.EndTime == endTime && !t.Ended() {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[uint]*models.Employee
}

func newFakeEmployeeRepo(employees ...*models.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[uint]*models.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(employee *models.Employee) error {
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepo) Update(employee *models.Employee) error {
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepo) Delete(chatID int64) error { return nil }

func (r *fakeEmployeeRepo) GetByChatID(chatID int64) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.ChatID == chatID {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetAll() ([]*models.Employee, error) { return nil, nil }

func (r *fakeEmployeeRepo) Exists(chatID int64) (bool, error) { return false, nil }

func (r *fakeEmployeeRepo) UpdateRole(chatID int64, role models.Role) error { return nil }

func (r *fakeEmployeeRepo) GetManagers() ([]*models.Employee, error) { return nil, nil }

type fakeSettingsRepo struct {
	settings models.CompanySettings
}

func (r *fakeSettingsRepo) Get() (*models.CompanySettings, error) {
	copied := r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Save(settings *models.CompanySettings) error {
	r.settings = *settings
	return nil
}
