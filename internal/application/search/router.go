package search

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/talento-pro/internal/application/access"
	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

const (
	// minTermLen términos más cortos devuelven resultados vacíos en todos los
	// tipos: mínimo definido, no un error.
	minTermLen   = 2
	defaultLimit = 10
	maxLimit     = 50
)

// Tipos de entidad buscables.
const (
	TypeJobs       = "jobs"
	TypeCandidates = "candidates"
	TypeCompanies  = "companies"
	TypeUsers      = "users"
)

// codeRe detecta el camino estructurado por identificador legible: letras
// seguidas de dígitos, ej. "JOB12" o "can3".
var codeRe = regexp.MustCompile(`^([A-Za-z]+)0*(\d+)$`)

// Router compone los alcances del AccessGate con búsqueda de texto libre y por
// identificador legible sobre cuatro tipos de entidad. Cada tipo se consulta de
// forma independiente: uno sin resultados no afecta a los demás.
type Router struct {
	gate        *access.Gate
	jobRepo     repository.JobRepository
	candRepo    repository.CandidateRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func NewRouter(
	gate *access.Gate,
	jobRepo repository.JobRepository,
	candRepo repository.CandidateRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) *Router {
	return &Router{
		gate:        gate,
		jobRepo:     jobRepo,
		candRepo:    candRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// Search ejecuta la búsqueda global. Las cuatro consultas son de solo lectura y
// sin dependencia entre sí, así que corren concurrentes; un alcance
// estructuralmente vacío omite la consulta de ese tipo sin tocar el store.
func (r *Router) Search(ctx context.Context, actor domain.Actor, req dto.SearchRequest) (*dto.SearchResponse, error) {
	resp := &dto.SearchResponse{
		Jobs:       []dto.SearchJobHit{},
		Candidates: []dto.SearchCandidateHit{},
		Companies:  []dto.SearchCompanyHit{},
		Users:      []dto.SearchUserHit{},
	}

	term := strings.TrimSpace(req.Query)
	if len([]rune(term)) < minTermLen {
		return resp, nil
	}

	q := repository.SearchQuery{
		Term:        foldTerm(term),
		CodePattern: codePattern(term),
		Limit:       clampLimit(req.Limit),
	}
	types := parseTypes(req.Types)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	if types[TypeJobs] {
		run(func() error { return r.searchJobs(actor, q, resp) })
	}
	if types[TypeCandidates] {
		run(func() error { return r.searchCandidates(actor, q, resp) })
	}
	if types[TypeCompanies] {
		run(func() error { return r.searchCompanies(actor, q, resp) })
	}
	if types[TypeUsers] {
		run(func() error { return r.searchUsers(actor, q, resp) })
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return resp, nil
}

func (r *Router) searchJobs(actor domain.Actor, q repository.SearchQuery, resp *dto.SearchResponse) error {
	scope, err := r.gate.VisibleJobsScope(actor)
	if err != nil {
		return err
	}
	if scope.Empty() {
		return nil
	}
	jobs, err := r.jobRepo.Search(q, scope)
	if err != nil {
		return err
	}
	hits := make([]dto.SearchJobHit, 0, len(jobs))
	for _, j := range jobs {
		hits = append(hits, dto.SearchJobHit{
			ID:       j.ID,
			Code:     j.Code,
			Title:    j.Title,
			Status:   j.Status,
			Location: j.Location,
		})
	}
	resp.Jobs = hits
	return nil
}

func (r *Router) searchCandidates(actor domain.Actor, q repository.SearchQuery, resp *dto.SearchResponse) error {
	scope, err := r.gate.VisibleCandidatesScope(actor)
	if err != nil {
		return err
	}
	if scope.Empty() {
		return nil
	}
	cands, err := r.candRepo.Search(q, scope)
	if err != nil {
		return err
	}
	hits := make([]dto.SearchCandidateHit, 0, len(cands))
	for _, c := range cands {
		hits = append(hits, dto.SearchCandidateHit{
			ID:       c.ID,
			Code:     c.Code,
			Name:     c.Name,
			Skills:   c.Profile.Skills,
			Location: c.Profile.Location,
		})
	}
	resp.Candidates = hits
	return nil
}

func (r *Router) searchCompanies(actor domain.Actor, q repository.SearchQuery, resp *dto.SearchResponse) error {
	scope, err := r.gate.VisibleCompaniesScope(actor)
	if err != nil {
		return err
	}
	if scope.Empty() {
		return nil
	}
	companies, err := r.companyRepo.Search(q, scope)
	if err != nil {
		return err
	}
	hits := make([]dto.SearchCompanyHit, 0, len(companies))
	for _, c := range companies {
		hits = append(hits, dto.SearchCompanyHit{
			ID:       c.ID,
			Code:     c.Code,
			Name:     c.Name,
			Industry: c.Industry,
		})
	}
	resp.Companies = hits
	return nil
}

func (r *Router) searchUsers(actor domain.Actor, q repository.SearchQuery, resp *dto.SearchResponse) error {
	scope, err := r.gate.VisibleUsersScope(actor)
	if err != nil {
		return err
	}
	if scope.Empty() {
		return nil
	}
	users, err := r.userRepo.Search(q, scope)
	if err != nil {
		return err
	}
	hits := make([]dto.SearchUserHit, 0, len(users))
	for _, u := range users {
		hits = append(hits, dto.SearchUserHit{
			ID:    u.ID,
			Code:  u.Code,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}
	resp.Users = hits
	return nil
}

// parseTypes interpreta el csv de tipos; vacío o sin valores válidos = todos.
func parseTypes(csv string) map[string]bool {
	all := map[string]bool{TypeJobs: true, TypeCandidates: true, TypeCompanies: true, TypeUsers: true}
	if strings.TrimSpace(csv) == "" {
		return all
	}
	out := map[string]bool{}
	for _, t := range strings.Split(csv, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if all[t] {
			out[t] = true
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// foldTerm normaliza el término: minúsculas y sin marcas diacríticas, para que
// "Bogotá" y "bogota" encuentren lo mismo. Los adaptadores aplican la misma
// normalización sobre las columnas (unaccent/lower).
func foldTerm(term string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, term)
	if err != nil {
		folded = term
	}
	return strings.ToLower(folded)
}

// codePattern construye la regex POSIX para el camino por identificador
// legible. "JOB1" produce ^JOB0*1$, que también encuentra JOB0001: el padding
// con ceros del code almacenado es variable. Devuelve vacío si el término no
// tiene forma de code.
func codePattern(term string) string {
	m := codeRe.FindStringSubmatch(term)
	if m == nil {
		return ""
	}
	return "^" + strings.ToUpper(m[1]) + "0*" + m[2] + "$"
}
