package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and indexes on startup. The canonical
// schema lives in schema.sql; this keeps a running database in sync.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS branches (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			address TEXT,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS shifts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			monthly_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS seats (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
			seat_number VARCHAR(20) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE,
			UNIQUE (branch_id, seat_number)
		)`,
		`CREATE TABLE IF NOT EXISTS lockers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			branch_id UUID NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
			locker_number VARCHAR(20) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE,
			UNIQUE (branch_id, locker_number)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			father_name VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(20) NOT NULL,
			email VARCHAR(255),
			address TEXT,
			aadhar_number VARCHAR(20),
			registration_no VARCHAR(50) UNIQUE NOT NULL,
			gender VARCHAR(10) NOT NULL DEFAULT 'other',
			branch_id UUID NOT NULL REFERENCES branches(id),
			shift_id UUID NOT NULL REFERENCES shifts(id),
			seat_id UUID REFERENCES seats(id),
			locker_id UUID REFERENCES lockers(id),
			membership_start DATE NOT NULL,
			membership_end DATE NOT NULL,
			total_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			amount_paid NUMERIC(10,2) NOT NULL DEFAULT 0,
			due_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			cash NUMERIC(10,2) NOT NULL DEFAULT 0,
			online NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS student_membership_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL DEFAULT '',
			branch_id UUID NOT NULL REFERENCES branches(id),
			shift_id UUID NOT NULL REFERENCES shifts(id),
			seat_id UUID REFERENCES seats(id),
			total_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			amount_paid NUMERIC(10,2) NOT NULL DEFAULT 0,
			due_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			cash NUMERIC(10,2) NOT NULL DEFAULT 0,
			online NUMERIC(10,2) NOT NULL DEFAULT 0,
			month_date DATE NOT NULL,
			prev_due_paid BOOLEAN NOT NULL DEFAULT false,
			source_month DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS advance_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL,
			method VARCHAR(10) NOT NULL DEFAULT 'cash',
			payment_date DATE NOT NULL DEFAULT CURRENT_DATE,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_branch_id ON students(branch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_shift_id ON students(shift_id)`,
		`CREATE INDEX IF NOT EXISTS idx_students_status ON students(status)`,
		`CREATE INDEX IF NOT EXISTS idx_history_student_id ON student_membership_history(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_history_month_date ON student_membership_history(month_date)`,
		`CREATE INDEX IF NOT EXISTS idx_history_branch_id ON student_membership_history(branch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_advance_payments_student_id ON advance_payments(student_id)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running index migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	seeds := []string{
		`INSERT INTO roles (name, description) VALUES ('admin', 'Full access') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO roles (name, description) VALUES ('staff', 'Front-desk operations') ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding roles: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
