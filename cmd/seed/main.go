// seed genera un script SQL con datos de demostración (usuarios de cada rol,
// una empresa, vacantes, perfiles de candidato y asignaciones de ejemplo).
//
// Uso: go run ./cmd/seed [password-demo]
// Por defecto usa "talento123" como contraseña de todos los usuarios demo.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	id, email, name, role string
}

var demoUsers = []demoUser{
	{"11111111-1111-1111-1111-111111111111", "root@talento.pro", "Root", "superadmin"},
	{"22222222-2222-2222-2222-222222222222", "admin@talento.pro", "Admin Demo", "admin"},
	{"33333333-3333-3333-3333-333333333333", "laura.hr@talento.pro", "Laura Méndez", "hr"},
	{"44444444-4444-4444-4444-444444444444", "pedro.agente@talento.pro", "Pedro Rojas", "agent"},
	{"55555555-5555-5555-5555-555555555555", "andres@correo.com", "Andrés Gómez", "candidate"},
}

func main() {
	password := "talento123"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash bcrypt: %v\n", err)
		os.Exit(1)
	}

	var sb strings.Builder
	sb.WriteString("-- Datos de demostración. Generado por cmd/seed; no editar a mano.\n")
	sb.WriteString("BEGIN;\n\n")

	for _, u := range demoUsers {
		sb.WriteString(fmt.Sprintf(
			"INSERT INTO users (id, email, password_hash, name, role, status) VALUES ('%s', '%s', '%s', '%s', '%s', 'active') ON CONFLICT (email) DO NOTHING;\n",
			u.id, esc(u.email), string(hash), esc(u.name), u.role))
	}

	sb.WriteString("\nINSERT INTO companies (id, name, industry, location, created_by) VALUES\n")
	sb.WriteString("  ('aaaaaaaa-0000-0000-0000-000000000001', 'Acme Andina', 'Tecnología', 'Bogotá', '33333333-3333-3333-3333-333333333333')\n")
	sb.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	sb.WriteString("\nINSERT INTO jobs (id, title, description, company_id, created_by, status, location, skills, experience_level, languages) VALUES\n")
	sb.WriteString("  ('bbbbbbbb-0000-0000-0000-000000000001', 'Backend Go', 'API de servicios financieros', 'aaaaaaaa-0000-0000-0000-000000000001', '33333333-3333-3333-3333-333333333333', 'open', 'Bogotá', ARRAY['go','postgresql'], 'senior', ARRAY['es','en']),\n")
	sb.WriteString("  ('bbbbbbbb-0000-0000-0000-000000000002', 'Data Engineer', 'Pipelines de datos', 'aaaaaaaa-0000-0000-0000-000000000001', '33333333-3333-3333-3333-333333333333', 'open', 'Medellín', ARRAY['python','sql'], 'mid', ARRAY['es'])\n")
	sb.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	sb.WriteString("\nINSERT INTO candidates (id, user_id, name, skills, experience_years, location, status) VALUES\n")
	sb.WriteString("  ('cccccccc-0000-0000-0000-000000000001', '55555555-5555-5555-5555-555555555555', 'Andrés Gómez', ARRAY['go','sql'], 6, 'Medellín', 'active')\n")
	sb.WriteString("ON CONFLICT (user_id) DO NOTHING;\n")

	sb.WriteString("\nINSERT INTO agent_assignments (id, agent_id, assigned_hrs, assigned_candidates, status, created_by) VALUES\n")
	sb.WriteString("  ('dddddddd-0000-0000-0000-000000000001', '44444444-4444-4444-4444-444444444444', ARRAY['33333333-3333-3333-3333-333333333333'], ARRAY['cccccccc-0000-0000-0000-000000000001'], 'active', '22222222-2222-2222-2222-222222222222')\n")
	sb.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	sb.WriteString("\nINSERT INTO candidate_assignments (id, candidate_id, job_id, assigned_to, assigned_by, priority, status, candidate_status) VALUES\n")
	sb.WriteString("  ('eeeeeeee-0000-0000-0000-000000000001', 'cccccccc-0000-0000-0000-000000000001', 'bbbbbbbb-0000-0000-0000-000000000001', '33333333-3333-3333-3333-333333333333', '44444444-4444-4444-4444-444444444444', 'high', 'active', 'shortlisted')\n")
	sb.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	sb.WriteString("\nCOMMIT;\n")

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("OK: %s (%d usuarios demo, password %q)\n", outPath, len(demoUsers), password)
}

// esc escapa comillas simples para literales SQL.
func esc(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
