package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"snowball/internal/config"
	"snowball/internal/game"
	"snowball/internal/market"
	"snowball/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Server struct {
	cfg   config.APIConfig
	log   *slog.Logger
	saves *store.Store
	mux   *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger, saves *store.Store) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:   cfg,
		log:   logger,
		saves: saves,
		mux:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/markets", s.handleMarketsList)
		r.Get("/markets/{market_id}/accounts", s.handleMarketAccounts)

		r.Post("/games", s.handleCreateGame)
		r.Get("/games", s.handleListGames)

		r.Route("/games/{save_id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleDeleteGame)

			r.Post("/phase", s.handleAdvancePhase)
			r.Post("/day", s.handleAdvanceDay)

			r.Get("/offers/jobs", s.handleJobOffers)
			r.Get("/offers/housing", s.handleHousingOffers)
			r.Post("/jobs/accept", s.handleAcceptJob)
			r.Post("/jobs/quit", s.handleQuitJob)
			r.Post("/housing", s.handleChangeHousing)

			r.Post("/accounts", s.handleOpenAccount)
			r.Post("/accounts/{account_id}/deposit", s.handleDeposit)
			r.Post("/accounts/{account_id}/withdraw", s.handleWithdraw)

			r.Post("/budget", s.handleSetBudget)
			r.Post("/budget/spend", s.handleSpendBudget)
			r.Post("/education", s.handleInvestEducation)
		})
	})
}

func (s *Server) handleMarketsList(w http.ResponseWriter, _ *http.Request) {
	type marketInfo struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Currency      string `json:"currency"`
		RetirementAge int    `json:"retirement_age"`
	}
	var out []marketInfo
	for _, id := range market.List() {
		p, err := market.Resolve(id)
		if err != nil {
			continue
		}
		out = append(out, marketInfo{
			ID:            p.MarketID(),
			Name:          p.MarketName(),
			Currency:      string(p.Currency()),
			RetirementAge: p.RetirementAge(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMarketAccounts(w http.ResponseWriter, r *http.Request) {
	p, err := market.Resolve(chi.URLParam(r, "market_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.AvailableAccounts())
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var in struct {
		MarketID   string `json:"market_id"`
		PlayerName string `json:"player_name"`
		Age        int    `json:"age"`
		StartYear  int    `json:"start_year"`
		JobID      string `json:"job_id,omitempty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := market.Resolve(in.MarketID); err != nil {
		writeDomainError(w, err)
		return
	}
	if strings.TrimSpace(in.PlayerName) == "" {
		writeError(w, http.StatusBadRequest, "player_name is required")
		return
	}
	if in.Age < 15 || in.Age > 100 {
		writeError(w, http.StatusBadRequest, "age must be between 15 and 100")
		return
	}
	if in.StartYear == 0 {
		in.StartYear = time.Now().Year()
	}

	state, err := game.NewGameState(uuid.NewString(), in.MarketID, strings.TrimSpace(in.PlayerName), in.Age, in.StartYear)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if in.JobID != "" {
		job, err := market.FindJob(in.MarketID, in.JobID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		state.AcceptJob(job)
	}
	if err := s.saves.Put(r.Context(), state); err != nil {
		writeDomainError(w, err)
		return
	}
	s.log.Info("game created", "save_id", state.SaveID, "market", state.MarketID)
	writeJSON(w, http.StatusCreated, state)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	saves, err := s.saves.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if saves == nil {
		saves = []store.SaveInfo{}
	}
	writeJSON(w, http.StatusOK, saves)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := s.saves.Get(r.Context(), chi.URLParam(r, "save_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.saves.Delete(r.Context(), chi.URLParam(r, "save_id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// mutateGame loads the snapshot, applies the mutation to a clone, and only
// persists when the mutation succeeds. A failed mutation never touches the
// stored save.
func (s *Server) mutateGame(w http.ResponseWriter, r *http.Request, fn func(*game.GameState) error) {
	saveID := chi.URLParam(r, "save_id")
	state, err := s.saves.Get(r.Context(), saveID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	next := state.Clone()
	if err := fn(&next); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.saves.Put(r.Context(), next); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (s *Server) handleAdvancePhase(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, func(g *game.GameState) error {
		g.AdvancePhase()
		return nil
	})
}

func (s *Server) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, func(g *game.GameState) error {
		profile, err := market.Resolve(g.MarketID)
		if err != nil {
			return err
		}
		return g.AdvanceExecutionDay(profile)
	})
}

func (s *Server) handleJobOffers(w http.ResponseWriter, r *http.Request) {
	state, err := s.saves.Get(r.Context(), chi.URLParam(r, "save_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jobs, err := market.JobOffers(state.MarketID, state.Career)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleHousingOffers(w http.ResponseWriter, r *http.Request) {
	state, err := s.saves.Get(r.Context(), chi.URLParam(r, "save_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	homes, err := market.HousingOffers(state.MarketID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, homes)
}

func (s *Server) handleAcceptJob(w http.ResponseWriter, r *http.Request) {
	var in struct {
		JobID string `json:"job_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		job, err := market.FindJob(g.MarketID, in.JobID)
		if err != nil {
			return err
		}
		if !job.Qualifies(g.Career.YearsExperience) {
			return errNotQualified
		}
		g.AcceptJob(job)
		return nil
	})
}

func (s *Server) handleQuitJob(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, func(g *game.GameState) error {
		g.QuitJob()
		return nil
	})
}

func (s *Server) handleChangeHousing(w http.ResponseWriter, r *http.Request) {
	var in struct {
		HousingID string `json:"housing_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		h, err := market.FindHousing(g.MarketID, in.HousingID)
		if err != nil {
			return err
		}
		return g.ChangeHousing(h)
	})
}

func (s *Server) handleOpenAccount(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name   string `json:"name"`
		Kind   string `json:"kind"`
		PlanID string `json:"plan_id"`
		Goal   string `json:"goal"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		id := uuid.NewString()
		switch game.AccountKind(in.Kind) {
		case game.AccountRetirement:
			profile, err := market.Resolve(g.MarketID)
			if err != nil {
				return err
			}
			var valid bool
			for _, t := range profile.AvailableAccounts() {
				if t.ID == in.PlanID {
					valid = true
					break
				}
			}
			if !valid {
				return errUnknownPlan
			}
			g.Finances.AddAccount(game.NewRetirementAccount(id, in.Name, in.PlanID))
		case game.AccountSinkingFund:
			g.Finances.AddAccount(game.NewSinkingFund(id, in.Name, in.Goal))
		case game.AccountTaxable, game.AccountEmergencyFund:
			g.Finances.AddAccount(game.NewAccount(id, in.Name, game.AccountKind(in.Kind)))
		default:
			return errUnknownAccountKind
		}
		return nil
	})
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.handleTransfer(w, r, (*game.GameState).DepositToAccount)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleTransfer(w, r, (*game.GameState).WithdrawFromAccount)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request, op func(*game.GameState, string, decimal.Decimal) error) {
	accountID := chi.URLParam(r, "account_id")
	var in struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		return op(g, accountID, in.Amount)
	})
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Allocations map[string]decimal.Decimal `json:"allocations"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		for _, category := range game.ExpenseCategories() {
			amount, ok := in.Allocations[string(category)]
			if !ok {
				continue
			}
			if amount.Sign() < 0 {
				return game.ErrInvalidAmount
			}
			g.Finances.SetBudget(category, amount)
			delete(in.Allocations, string(category))
		}
		for key := range in.Allocations {
			return errUnknownCategory(key)
		}
		return nil
	})
}

func (s *Server) handleSpendBudget(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		category := game.ExpenseCategory(in.Category)
		if !validCategory(category) {
			return errUnknownCategory(in.Category)
		}
		return g.Finances.SpendFromBudget(category, in.Amount)
	})
}

func (s *Server) handleInvestEducation(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mutateGame(w, r, func(g *game.GameState) error {
		return g.InvestHumanCapital(in.Amount)
	})
}

var (
	errNotQualified       = errors.New("not enough experience for this job")
	errUnknownPlan        = errors.New("unknown retirement plan for this market")
	errUnknownAccountKind = errors.New("unknown account kind")
)

func validCategory(c game.ExpenseCategory) bool {
	for _, known := range game.ExpenseCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type unknownCategoryError string

func errUnknownCategory(key string) error { return unknownCategoryError(key) }

func (e unknownCategoryError) Error() string {
	return "unknown budget category: " + string(e)
}

func writeDomainError(w http.ResponseWriter, err error) {
	var badCategory unknownCategoryError
	switch {
	case errors.Is(err, store.ErrSaveNotFound),
		errors.Is(err, game.ErrAccountNotFound),
		errors.Is(err, market.ErrListingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, market.ErrNotImplemented):
		writeError(w, http.StatusNotImplemented, err.Error())
	case errors.Is(err, market.ErrUnsupportedMarket),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInvalidMonth),
		errors.Is(err, game.ErrInvalidPhase),
		errors.Is(err, errNotQualified),
		errors.Is(err, errUnknownPlan),
		errors.Is(err, errUnknownAccountKind),
		errors.As(err, &badCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
