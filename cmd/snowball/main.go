package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cl "snowball/internal/cli"
	"snowball/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "snowball",
		Short:        "Snowball personal finance simulation client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMarketsCmd(&apiBase),
		newNewCmd(&apiBase),
		newSavesCmd(&apiBase),
		newLoadCmd(&apiBase),
		newDeleteCmd(&apiBase),
		newStatusCmd(&apiBase),
		newPhaseCmd(&apiBase),
		newDayCmd(&apiBase),
		newJobsCmd(&apiBase),
		newHousingCmd(&apiBase),
		newAccountCmd(&apiBase),
		newBudgetCmd(&apiBase),
		newEducationCmd(&apiBase),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

func cmdContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}

func activeSave() (cl.Session, error) {
	return cl.LoadSession()
}

func newMarketsCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List supported markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			markets, err := newClient(apiBase).ListMarkets(ctx)
			if err != nil {
				return err
			}
			renderMarkets(markets)
			return nil
		},
	}
}

func newNewCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			marketID, err := promptChoice("Market", []string{"czech", "usa", "uk"}, "czech")
			if err != nil {
				return err
			}
			name, err := promptRequired("Player name")
			if err != nil {
				return err
			}
			age, err := promptInt("Age", 15)
			if err != nil {
				return err
			}
			jobID, err := promptOptional("Starting job id (optional)")
			if err != nil {
				return err
			}

			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).NewGame(ctx, marketID, name, age, time.Now().Year(), jobID)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			if err := cl.SaveSession(cl.Session{
				SaveID:     state.SaveID,
				MarketID:   state.MarketID,
				PlayerName: state.Player.Name,
			}); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("New game started in %s. Save %s is now active.", marketID, state.SaveID))
			renderStatus(state)
			return nil
		},
	}
}

func newSavesCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "saves",
		Short: "List saved games",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			saves, err := newClient(apiBase).ListGames(ctx)
			if err != nil {
				return err
			}
			renderSaves(saves)
			return nil
		},
	}
}

func newLoadCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "load <save-id>",
		Short: "Make a saved game the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).Game(ctx, args[0])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			if err := cl.SaveSession(cl.Session{
				SaveID:     state.SaveID,
				MarketID:   state.MarketID,
				PlayerName: state.Player.Name,
			}); err != nil {
				return err
			}
			printSuccess("Save loaded.")
			renderStatus(state)
			return nil
		},
	}
}

func newDeleteCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <save-id>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			if err := newClient(apiBase).DeleteGame(ctx, args[0]); err != nil {
				return err
			}
			session, err := cl.LoadSession()
			if err == nil && session.SaveID == args[0] {
				_ = cl.ClearSession()
			}
			printSuccess("Save deleted.")
			return nil
		},
	}
}

func newStatusCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active game",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).Game(ctx, session.SaveID)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			renderStatus(state)
			return nil
		},
	}
}

func newPhaseCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "phase",
		Short: "Advance to the next phase of the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).AdvancePhase(ctx, session.SaveID)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			printSuccess("Now in " + state.Phase.Name() + ".")
			renderStatus(state)
			return nil
		},
	}
}

func newDayCmd(apiBase *string) *cobra.Command {
	var rest bool
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Advance one day of the execution phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			client := newClient(apiBase)

			raw, err := client.AdvanceDay(ctx, session.SaveID)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			for rest && state.Phase.IsExecution() {
				raw, err = client.AdvanceDay(ctx, session.SaveID)
				if err != nil {
					return err
				}
				state, err = decodeState(raw)
				if err != nil {
					return err
				}
			}
			renderStatus(state)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rest, "rest", false, "advance through the rest of the month")
	return cmd
}

func newJobsCmd(apiBase *string) *cobra.Command {
	jobs := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and act on job offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			offers, err := newClient(apiBase).JobOffers(ctx, session.SaveID)
			if err != nil {
				return err
			}
			renderJobOffers(offers)
			return nil
		},
	}

	jobs.AddCommand(&cobra.Command{
		Use:   "accept <job-id>",
		Short: "Accept a job offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).AcceptJob(ctx, session.SaveID, args[0])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			if state.Career.CurrentJob != nil {
				printSuccess("Accepted: " + state.Career.CurrentJob.Title)
			}
			renderStatus(state)
			return nil
		},
	})

	jobs.AddCommand(&cobra.Command{
		Use:   "quit",
		Short: "Quit the current job",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).QuitJob(ctx, session.SaveID)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			printWarn("You are now unemployed.")
			renderStatus(state)
			return nil
		},
	})

	return jobs
}

func newHousingCmd(apiBase *string) *cobra.Command {
	housing := &cobra.Command{
		Use:   "housing",
		Short: "Browse rental listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			offers, err := newClient(apiBase).HousingOffers(ctx, session.SaveID)
			if err != nil {
				return err
			}
			renderHousingOffers(offers)
			return nil
		},
	}

	housing.AddCommand(&cobra.Command{
		Use:   "move <housing-id>",
		Short: "Move to a new place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).ChangeHousing(ctx, session.SaveID, args[0])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			if state.Housing != nil {
				printSuccess("Moved to " + state.Housing.Address + ".")
			}
			renderStatus(state)
			return nil
		},
	})

	return housing
}

func newAccountCmd(apiBase *string) *cobra.Command {
	account := &cobra.Command{
		Use:   "account",
		Short: "Manage savings and investment accounts",
	}

	var kind, planID, goal string
	open := &cobra.Command{
		Use:   "open <name>",
		Short: "Open a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).OpenAccount(ctx, session.SaveID, args[0], kind, planID, goal)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			printSuccess("Account opened.")
			renderStatus(state)
			return nil
		},
	}
	open.Flags().StringVar(&kind, "kind", "taxable", "account kind: retirement, taxable, emergency_fund, sinking_fund")
	open.Flags().StringVar(&planID, "plan", "", "retirement plan id (for retirement accounts)")
	open.Flags().StringVar(&goal, "goal", "", "goal label (for sinking funds)")
	account.AddCommand(open)

	account.AddCommand(&cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Move cash into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).Deposit(ctx, session.SaveID, args[0], args[1])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			renderStatus(state)
			return nil
		},
	})

	account.AddCommand(&cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Move an account balance back to cash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).Withdraw(ctx, session.SaveID, args[0], args[1])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			renderStatus(state)
			return nil
		},
	})

	return account
}

func newBudgetCmd(apiBase *string) *cobra.Command {
	budget := &cobra.Command{
		Use:   "budget",
		Short: "Plan and track monthly spending",
	}

	budget.AddCommand(&cobra.Command{
		Use:   "set <category=amount> ...",
		Short: "Set budget allocations for the month",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allocations := make(map[string]string, len(args))
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected category=amount, got %q", arg)
				}
				allocations[strings.TrimSpace(key)] = strings.TrimSpace(value)
			}
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).SetBudget(ctx, session.SaveID, allocations)
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			printSuccess("Budget updated.")
			renderBudget(state)
			return nil
		},
	})

	budget.AddCommand(&cobra.Command{
		Use:   "spend <category> <amount>",
		Short: "Record spending against a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).SpendBudget(ctx, session.SaveID, args[0], args[1])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			renderBudget(state)
			return nil
		},
	})

	return budget
}

func newEducationCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "education <amount>",
		Short: "Invest cash into skills and education",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := activeSave()
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			raw, err := newClient(apiBase).InvestEducation(ctx, session.SaveID, args[0])
			if err != nil {
				return err
			}
			state, err := decodeState(raw)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Invested. Earning potential multiplier is now %s.",
				state.Player.HumanCapitalIncomeMultiplier()))
			renderStatus(state)
			return nil
		},
	}
}
