package repository

import (
	"context"

	"placement-engine/internal/database"
	"placement-engine/internal/domain/student"

	"github.com/google/uuid"
)

const studentColumns = `s.id, s.name, s.email, s.major, s.gpa, s.graduation_year,
	s.placed, s.placed_role, s.placed_company, s.created_at, s.updated_at`

type PostgresStudentRepository struct {
	db database.DB
}

var _ student.Repository = (*PostgresStudentRepository)(nil)

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (student.Student, error) {
	var s student.Student
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students s WHERE s.id = $1`, id)
	if err := scanStudent(row, &s); err != nil {
		if isNoRows(err) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}

	skills, err := r.attrsFor(ctx,
		`SELECT student_id, skill FROM student_skills WHERE student_id = $1 ORDER BY skill`, id)
	if err != nil {
		return student.Student{}, err
	}
	roles, err := r.attrsFor(ctx,
		`SELECT student_id, role FROM student_preferred_roles WHERE student_id = $1 ORDER BY position, role`, id)
	if err != nil {
		return student.Student{}, err
	}

	s.Skills = nonNil(skills[s.ID])
	s.PreferredRoles = nonNil(roles[s.ID])
	return s, nil
}

// ListPeers pages by id so the pool is stable between calls.
func (r *PostgresStudentRepository) ListPeers(ctx context.Context, excludeID uuid.UUID, limit int) ([]student.Student, error) {
	limit = clampLimit(limit)
	page := `SELECT id FROM students WHERE id <> $1 ORDER BY id LIMIT $2`
	return r.list(ctx, page, excludeID, limit)
}

func (r *PostgresStudentRepository) ListStudents(ctx context.Context, limit int) ([]student.Student, error) {
	limit = clampLimit(limit)
	page := `SELECT id FROM students ORDER BY id LIMIT $1`
	return r.list(ctx, page, limit)
}

// list loads the students selected by page (a query returning ids) and then
// their skills and roles with one query each.
func (r *PostgresStudentRepository) list(ctx context.Context, page string, args ...any) ([]student.Student, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students s JOIN (`+page+`) p ON p.id = s.id ORDER BY s.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]student.Student, 0)
	for rows.Next() {
		var s student.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skills, err := r.attrsFor(ctx,
		`SELECT ss.student_id, ss.skill FROM student_skills ss JOIN (`+page+`) p ON p.id = ss.student_id
		 ORDER BY ss.student_id, ss.skill`, args...)
	if err != nil {
		return nil, err
	}
	roles, err := r.attrsFor(ctx,
		`SELECT pr.student_id, pr.role FROM student_preferred_roles pr JOIN (`+page+`) p ON p.id = pr.student_id
		 ORDER BY pr.student_id, pr.position, pr.role`, args...)
	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Skills = nonNil(skills[out[i].ID])
		out[i].PreferredRoles = nonNil(roles[out[i].ID])
	}
	return out, nil
}

// attrsFor runs a (student_id, value) query and groups values by student.
func (r *PostgresStudentRepository) attrsFor(ctx context.Context, query string, args ...any) (map[uuid.UUID][]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]string)
	for rows.Next() {
		var id uuid.UUID
		var v string
		if err := rows.Scan(&id, &v); err != nil {
			return nil, err
		}
		out[id] = append(out[id], v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner, s *student.Student) error {
	return row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Major, &s.GPA, &s.GraduationYear,
		&s.Placed, &s.PlacedRole, &s.PlacedCompany, &s.CreatedAt, &s.UpdatedAt,
	)
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
