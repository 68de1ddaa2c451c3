// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev supervisor phone already exists.
package main

import (
	"context"
	"log"

	"nio-menu/backend/internal/config"
	"nio-menu/backend/internal/db"
)

const (
	devSupervisorPhone = "5512345678"
	devTechnicianPhone = "5599887766"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()

	var exists bool
	err = conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM personnel WHERE phone = $1)`, devSupervisorPhone).Scan(&exists)
	if err != nil {
		log.Fatalf("seed: check existing: %v", err)
	}
	if exists {
		log.Println("seed: dev data already present; nothing to do")
		return
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("seed: begin: %v", err)
	}
	defer tx.Rollback()

	var supervisorID, technicianID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO personnel (phone, full_name, primary_role, active)
		VALUES ($1, 'Ana Torres', 'SUPERVISOR', TRUE)
		RETURNING id`, devSupervisorPhone).Scan(&supervisorID)
	if err != nil {
		log.Fatalf("seed: personnel: %v", err)
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO personnel (phone, full_name, primary_role, active)
		VALUES ($1, 'Luis Vega', '', TRUE)
		RETURNING id`, devTechnicianPhone).Scan(&technicianID)
	if err != nil {
		log.Fatalf("seed: personnel: %v", err)
	}

	menuRows := []struct {
		code, title, kind, category, payload string
		sortOrder                            int
	}{
		{"rosters", "Supervision rosters", "report", "", `{"view": "rosters"}`, 1},
		{"formats", "Document formats", "catalog", "", `{"view": "formats"}`, 2},
		{"assignments", "My assignments", "query", "", `{"view": "assignments"}`, 3},
		{"help", "Help", "info", "general", `{"view": "help"}`, 1},
		{"contact", "Contact support", "info", "general", `{"view": "contact"}`, 2},
	}
	menuIDs := make(map[string]int64, len(menuRows))
	for _, m := range menuRows {
		var id int64
		err = tx.QueryRowContext(ctx, `
			INSERT INTO menu_items (code, title, kind, category, payload, sort_order, active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			RETURNING id`, m.code, m.title, m.kind, m.category, m.payload, m.sortOrder).Scan(&id)
		if err != nil {
			log.Fatalf("seed: menu_items: %v", err)
		}
		menuIDs[m.code] = id
	}

	for _, code := range []string{"rosters", "formats", "assignments"} {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO role_menu (role_code, menu_item_id) VALUES ('SUPERVISOR', $1)`, menuIDs[code]); err != nil {
			log.Fatalf("seed: role_menu: %v", err)
		}
	}

	for _, perm := range []string{"reports.read", "rosters.read", "formats.read"} {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO role_permissions (role_code, permission_code) VALUES ('SUPERVISOR', $1)`, perm); err != nil {
			log.Fatalf("seed: role_permissions: %v", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO formats (category, name, description, url, active) VALUES
		('inspection', 'Daily inspection sheet', 'Per-shift site inspection checklist', 'https://files.example.com/f/inspection-daily.pdf', TRUE),
		('inspection', 'Incident report', 'Incident and near-miss report form', 'https://files.example.com/f/incident.pdf', TRUE),
		('hr', 'Leave request', 'Paid leave request form', 'https://files.example.com/f/leave.pdf', TRUE)`); err != nil {
		log.Fatalf("seed: formats: %v", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO service_assignments (personnel_id, client, service, active) VALUES
		($1, 'Acme Corp', 'Night guard', TRUE),
		($1, 'Acme Corp', 'Patrol', TRUE),
		($1, 'Globex', 'Reception', TRUE)`, supervisorID); err != nil {
		log.Fatalf("seed: service_assignments: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("seed: commit: %v", err)
	}
	log.Printf("seed: inserted dev data (supervisor id %d, technician id %d)", supervisorID, technicianID)
}
