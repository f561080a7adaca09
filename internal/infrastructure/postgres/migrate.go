package postgres

import (
	"context"
	"fmt"
)

// Migrate aplica el esquema completo de forma idempotente. Política de FKs:
// las tareas y etiquetas de un proyecto caen en cascada al borrarlo; las
// tablas financieras usan RESTRICT, así que un proyecto referenciado por
// órdenes, facturas o gastos no puede borrarse (el repositorio lo traduce
// a domain.ErrConflict).
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'team_member',
		hourly_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		manager_id UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
		deadline DATE,
		priority TEXT NOT NULL DEFAULT 'medium',
		budget NUMERIC(14,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'planning',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS project_tags (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		tag TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (project_id, tag)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		assignee_id UUID REFERENCES users(id) ON DELETE SET NULL,
		status TEXT NOT NULL DEFAULT 'new',
		priority TEXT NOT NULL DEFAULT 'medium',
		deadline DATE,
		time_estimate NUMERIC(8,2) NOT NULL DEFAULT 0,
		required_skills TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS timesheets (
		id UUID PRIMARY KEY,
		task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
		date DATE NOT NULL,
		hours NUMERIC(5,2) NOT NULL CHECK (hours > 0 AND hours <= 24),
		billable BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sales_orders (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
		customer_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		total_amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (total_amount >= 0),
		state TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
		vendor_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		total_amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (total_amount >= 0),
		state TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
		sales_order_id UUID REFERENCES sales_orders(id) ON DELETE SET NULL,
		invoice_number TEXT NOT NULL UNIQUE,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
		state TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS vendor_bills (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
		purchase_order_id UUID REFERENCES purchase_orders(id) ON DELETE SET NULL,
		bill_number TEXT,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
		state TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE RESTRICT,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
		amount NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (amount >= 0),
		description TEXT NOT NULL DEFAULT '',
		billable BOOLEAN NOT NULL DEFAULT false,
		receipt_url TEXT,
		state TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		unit_price NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS attachments (
		id UUID PRIMARY KEY,
		project_id UUID REFERENCES projects(id) ON DELETE CASCADE,
		task_id UUID REFERENCES tasks(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		file_url TEXT NOT NULL,
		uploaded_by UUID REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS user_skills (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		skill_name TEXT NOT NULL,
		proficiency_level TEXT NOT NULL DEFAULT 'intermediate',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, skill_name)
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		token TEXT PRIMARY KEY,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks (assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_timesheets_task ON timesheets (task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_project ON expenses (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_project ON invoices (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires ON refresh_tokens (expires_at)`,
}
