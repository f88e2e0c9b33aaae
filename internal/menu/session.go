package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sred02/probcalc/internal/config"
	"github.com/sred02/probcalc/internal/input"
	"github.com/sred02/probcalc/internal/prob"
	"github.com/sred02/probcalc/internal/terminal"
)

// Application identity shown in the header panel.
const (
	AppName    = "Probability Calculator"
	AppVersion = "v1.0.0"
)

const ruleWidth = 56

// Session runs the interactive menu loop over a console. All state that
// survives a single screen lives here: the chosen category and
// distribution while a calculation is in flight, and the last result
// between evaluation and display. Nothing persists across calculations.
type Session struct {
	console *terminal.Console
	catalog Catalog
	display config.DisplayConfig
	logger  *zap.Logger
	id      uuid.UUID

	category Category
	dist     Distribution
	result   prob.Result
}

// NewSession creates a session over the given console.
//
// Precondition: console and logger must be non-nil; catalog must be valid.
// Postcondition: Returns a Session with a fresh session id.
func NewSession(console *terminal.Console, catalog Catalog, display config.DisplayConfig, logger *zap.Logger) *Session {
	return &Session{
		console: console,
		catalog: catalog,
		display: display,
		logger:  logger,
		id:      uuid.New(),
	}
}

// Run drives the state machine from StateMainMenu until StateExit.
// End of input (EOF) is treated as a normal exit so piped sessions
// terminate cleanly.
//
// Postcondition: Returns nil on user exit or EOF; a non-nil error only
// on an unrecoverable console failure.
func (s *Session) Run() error {
	s.logger.Info("session started", zap.String("session_id", s.id.String()))

	state := StateMainMenu
	for state != StateExit {
		next, err := s.step(state)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("session in state %s: %w", state, err)
		}
		state = next
	}

	s.goodbye()
	s.logger.Info("session ended", zap.String("session_id", s.id.String()))
	return nil
}

// step executes the handler for one state and returns the next state.
func (s *Session) step(state State) (State, error) {
	switch state {
	case StateMainMenu:
		return s.mainMenu()
	case StateCategorySelect:
		return s.categorySelect()
	case StateDistributionSelect:
		return s.distributionSelect()
	case StateParameterEntry:
		return s.parameterEntry()
	case StateResultDisplay:
		return s.resultDisplay()
	default:
		return StateExit, fmt.Errorf("unknown state %d", state)
	}
}

func (s *Session) mainMenu() (State, error) {
	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Panel("", []string{
		terminal.Colorize(terminal.Bold+terminal.Cyan, AppName) + "  " +
			terminal.Colorize(terminal.Dim, AppVersion),
	}))
	_ = s.console.WriteLine(fmt.Sprintf("  %s1%s. New calculation",
		terminal.Green, terminal.Reset))
	_ = s.console.WriteLine(fmt.Sprintf("  %s0%s. Exit",
		terminal.Red, terminal.Reset))

	for {
		_ = s.console.WritePrompt(terminal.Colorize(terminal.BrightWhite, "Enter option: "))
		line, err := s.console.ReadLine()
		if err != nil {
			return StateExit, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1":
			return StateCategorySelect, nil
		case "0", "q", "quit", "exit":
			return StateExit, nil
		default:
			s.showInvalid("choose a number from the menu")
		}
	}
}

func (s *Session) categorySelect() (State, error) {
	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Colorize(terminal.Magenta,
		terminal.Rule("Select a Category", ruleWidth)))
	for i, cat := range s.catalog.Categories {
		_ = s.console.WriteLine(fmt.Sprintf("  %s%d%s. %s%s%s — %s",
			terminal.Green, i+1, terminal.Reset,
			terminal.BrightWhite, cat.Name, terminal.Reset,
			cat.Description))
	}
	_ = s.console.WriteLine(fmt.Sprintf("  %s0%s. Back", terminal.Yellow, terminal.Reset))

	idx, back, err := s.promptIndex(len(s.catalog.Categories))
	if err != nil {
		return StateExit, err
	}
	if back {
		return StateMainMenu, nil
	}
	s.category = s.catalog.Categories[idx]
	return StateDistributionSelect, nil
}

func (s *Session) distributionSelect() (State, error) {
	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Colorize(terminal.Magenta,
		terminal.Rule(s.category.Name+" Distributions", ruleWidth)))
	for i, d := range s.category.Distributions {
		_ = s.console.WriteLine(fmt.Sprintf("  %s%d%s. %-26s %s",
			terminal.Green, i+1, terminal.Reset,
			d.Name,
			terminal.Colorize(terminal.Dim, d.Summary)))
	}
	_ = s.console.WriteLine(fmt.Sprintf("  %s0%s. Back", terminal.Yellow, terminal.Reset))

	idx, back, err := s.promptIndex(len(s.category.Distributions))
	if err != nil {
		return StateExit, err
	}
	if back {
		return StateCategorySelect, nil
	}
	s.dist = s.category.Distributions[idx]
	return StateParameterEntry, nil
}

// parameterEntry collects the parameters for the selected distribution
// and invokes the matching evaluator. Cancelling at any prompt returns
// to the main menu.
func (s *Session) parameterEntry() (State, error) {
	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Colorf(terminal.Cyan, "%s — %s", s.dist.Name, s.dist.Summary))
	_ = s.console.WriteLine(terminal.Colorize(terminal.Dim,
		"Type 'q' at any prompt to cancel"))

	start := time.Now()

	var (
		result    prob.Result
		cancelled bool
		err       error
	)
	switch s.dist.ID {
	case DistBinomial:
		result, cancelled, err = s.collectBinomial()
	case DistPoisson:
		result, cancelled, err = s.collectPoisson()
	case DistNormal:
		result, cancelled, err = s.collectNormal()
	case DistExponential:
		result, cancelled, err = s.collectExponential()
	default:
		return StateExit, fmt.Errorf("unknown distribution id %q", s.dist.ID)
	}
	if err != nil {
		return StateExit, err
	}
	if cancelled {
		_ = s.console.WriteLine(terminal.Colorize(terminal.Yellow, "Calculation cancelled."))
		return StateMainMenu, nil
	}

	s.result = result
	s.logger.Info("calculation complete",
		zap.String("session_id", s.id.String()),
		zap.String("distribution", result.Distribution),
		zap.String("event", result.Event),
		zap.Float64("value", result.Value),
		zap.Duration("elapsed", time.Since(start)),
	)
	return StateResultDisplay, nil
}

func (s *Session) collectBinomial() (prob.Result, bool, error) {
	n, cancelled, err := s.promptInt("n", "n — total number of trials",
		input.Constraint{Integer: true, Min: input.Bound(0)})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	k, cancelled, err := s.promptInt("k", fmt.Sprintf("k — number of successes (max %d)", n),
		input.Constraint{Integer: true, Min: input.Bound(0), Max: input.Bound(float64(n))})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	p, cancelled, err := s.promptFloat("p", "p — probability of success per trial",
		input.Constraint{Min: input.Bound(0), Max: input.Bound(1)})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}

	b, err := prob.NewBinomial(n, k, p)
	if err != nil {
		// Parameters are constrained at the prompts, so this only fires
		// if the constraints and the constructor ever disagree.
		return prob.Result{}, false, err
	}

	choice, cancelled, err := s.promptChoice("Probability to compute", []string{
		fmt.Sprintf("P(X = %d) — exactly k successes", k),
		fmt.Sprintf("P(X <= %d) — at most k successes", k),
	})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	if choice == 1 {
		return b.CDF(), false, nil
	}
	return b.PMF(), false, nil
}

func (s *Session) collectPoisson() (prob.Result, bool, error) {
	lambda, cancelled, err := s.promptFloat("λ", "λ (lambda) — average rate of events",
		input.Constraint{Min: input.Bound(0), MinExclusive: true})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	k, cancelled, err := s.promptInt("k", "k — number of events",
		input.Constraint{Integer: true, Min: input.Bound(0)})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}

	p, err := prob.NewPoisson(lambda, k)
	if err != nil {
		return prob.Result{}, false, err
	}

	choice, cancelled, err := s.promptChoice("Probability to compute", []string{
		fmt.Sprintf("P(X = %d) — exactly k events", k),
		fmt.Sprintf("P(X <= %d) — at most k events", k),
	})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	if choice == 1 {
		return p.CDF(), false, nil
	}
	return p.PMF(), false, nil
}

func (s *Session) collectNormal() (prob.Result, bool, error) {
	mu, cancelled, err := s.promptFloat("μ", "μ (mu) — mean of the distribution",
		input.Constraint{})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	sigma, cancelled, err := s.promptFloat("σ", "σ (sigma) — standard deviation",
		input.Constraint{Min: input.Bound(0), MinExclusive: true})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}

	n, err := prob.NewNormal(mu, sigma)
	if err != nil {
		return prob.Result{}, false, err
	}

	mode, cancelled, err := s.promptChoice("Probability to compute", []string{
		"P(X < x) — below a value",
		"P(X > x) — above a value",
		"P(a < X < b) — between two values",
		"f(x) — density at a value",
	})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}

	if mode == 2 {
		a, cancelled, err := s.promptFloat("a", "a — lower bound", input.Constraint{})
		if err != nil || cancelled {
			return prob.Result{}, cancelled, err
		}
		b, cancelled, err := s.promptFloat("b", "b — upper bound",
			input.Constraint{Min: input.Bound(a)})
		if err != nil || cancelled {
			return prob.Result{}, cancelled, err
		}
		return n.CDFBetween(a, b), false, nil
	}

	x, cancelled, err := s.promptFloat("x", "x — value to evaluate", input.Constraint{})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	switch mode {
	case 1:
		return n.CDFAbove(x), false, nil
	case 3:
		return n.PDF(x), false, nil
	default:
		return n.CDFBelow(x), false, nil
	}
}

func (s *Session) collectExponential() (prob.Result, bool, error) {
	lambda, cancelled, err := s.promptFloat("λ", "λ (lambda) — event rate (1 / mean)",
		input.Constraint{Min: input.Bound(0), MinExclusive: true})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	x, cancelled, err := s.promptFloat("x", "x — time/distance value",
		input.Constraint{Min: input.Bound(0)})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}

	e, err := prob.NewExponential(lambda)
	if err != nil {
		return prob.Result{}, false, err
	}

	choice, cancelled, err := s.promptChoice("Probability to compute", []string{
		fmt.Sprintf("P(X <= %v) — at most x", x),
		fmt.Sprintf("P(X > %v) — more than x", x),
	})
	if err != nil || cancelled {
		return prob.Result{}, cancelled, err
	}
	if choice == 1 {
		return e.Survival(x), false, nil
	}
	return e.CDF(x), false, nil
}

func (s *Session) resultDisplay() (State, error) {
	r := s.result

	params := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		params = append(params, fmt.Sprintf("%s=%s", p.Name, p.Value))
	}

	value := fmt.Sprintf("%.*f", s.display.Decimals, r.Value)
	resultLine := fmt.Sprintf("%s %s = %s",
		terminal.Colorize(terminal.BrightGreen, "✔"),
		r.Event,
		terminal.Colorize(terminal.Bold+terminal.Green, value))
	if s.display.Percent && !r.Density {
		resultLine += terminal.Colorf(terminal.Dim, "  (%.2f%%)", r.Value*100)
	}

	lines := []string{
		fmt.Sprintf("%s %s", terminal.Colorize(terminal.Dim, "Distribution :"), r.Distribution),
		fmt.Sprintf("%s %s", terminal.Colorize(terminal.Dim, "Parameters   :"), strings.Join(params, ", ")),
		fmt.Sprintf("%s %s", terminal.Colorize(terminal.Dim, "Formula      :"), r.Formula),
		"",
		resultLine,
	}
	if len(r.Derived) > 0 {
		derived := make([]string, 0, len(r.Derived))
		for _, d := range r.Derived {
			derived = append(derived, fmt.Sprintf("%s = %.*f", d.Name, s.display.Decimals, d.Value))
		}
		lines = append(lines, terminal.Colorize(terminal.Dim, strings.Join(derived, "   ")))
	}

	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Panel("Result", lines))

	for {
		_ = s.console.WritePrompt(terminal.Colorize(terminal.Magenta, "Calculate again? [Y/n]: "))
		line, err := s.console.ReadLine()
		if err != nil {
			return StateExit, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return StateMainMenu, nil
		case "n", "no", "q", "quit", "exit":
			return StateExit, nil
		default:
			s.showInvalid("answer y or n")
		}
	}
}

// promptIndex reads a 1-based menu selection, with 0 meaning back.
// Re-prompts until the selection is valid.
//
// Precondition: count > 0.
// Postcondition: On success the returned index is in [0, count).
func (s *Session) promptIndex(count int) (idx int, back bool, err error) {
	for {
		_ = s.console.WritePrompt(terminal.Colorf(terminal.BrightWhite, "Select [1-%d, 0=back]: ", count))
		line, err := s.console.ReadLine()
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if isCancel(line) || line == "0" {
			return 0, true, nil
		}
		choice := 0
		if _, serr := fmt.Sscanf(line, "%d", &choice); serr != nil || choice < 1 || choice > count {
			s.showInvalid(fmt.Sprintf("choose a number between 0 and %d", count))
			continue
		}
		return choice - 1, false, nil
	}
}

// promptChoice shows a small numbered option list and reads a selection.
//
// Postcondition: On success the returned index is in [0, len(options)).
func (s *Session) promptChoice(title string, options []string) (int, bool, error) {
	_ = s.console.WriteLine(terminal.Colorf(terminal.Magenta, "%s:", title))
	for i, opt := range options {
		_ = s.console.WriteLine(fmt.Sprintf("  %s%d%s. %s",
			terminal.Green, i+1, terminal.Reset, opt))
	}
	for {
		_ = s.console.WritePrompt(terminal.Colorf(terminal.BrightWhite, "Select [1-%d]: ", len(options)))
		line, err := s.console.ReadLine()
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if isCancel(line) {
			return 0, true, nil
		}
		choice := 0
		if _, serr := fmt.Sscanf(line, "%d", &choice); serr != nil || choice < 1 || choice > len(options) {
			s.showInvalid(fmt.Sprintf("choose a number between 1 and %d", len(options)))
			continue
		}
		return choice - 1, false, nil
	}
}

// promptInt prompts for a single integer parameter, re-prompting on any
// validation failure.
func (s *Session) promptInt(name, label string, c input.Constraint) (int, bool, error) {
	for {
		_ = s.console.WritePrompt(fmt.Sprintf("  %s %s: ",
			label, terminal.Colorf(terminal.Dim, "(%s)", c.Describe())))
		line, err := s.console.ReadLine()
		if err != nil {
			return 0, false, err
		}
		if isCancel(line) {
			return 0, true, nil
		}
		v, err := input.ParseInt(name, line, c)
		if err != nil {
			var inv *input.InvalidInputError
			if errors.As(err, &inv) {
				s.showInvalid(inv.Detail)
				continue
			}
			return 0, false, err
		}
		return v, false, nil
	}
}

// promptFloat prompts for a single real parameter, re-prompting on any
// validation failure.
func (s *Session) promptFloat(name, label string, c input.Constraint) (float64, bool, error) {
	for {
		_ = s.console.WritePrompt(fmt.Sprintf("  %s %s: ",
			label, terminal.Colorf(terminal.Dim, "(%s)", c.Describe())))
		line, err := s.console.ReadLine()
		if err != nil {
			return 0, false, err
		}
		if isCancel(line) {
			return 0, true, nil
		}
		v, err := input.ParseFloat(name, line, c)
		if err != nil {
			var inv *input.InvalidInputError
			if errors.As(err, &inv) {
				s.showInvalid(inv.Detail)
				continue
			}
			return 0, false, err
		}
		return v, false, nil
	}
}

func (s *Session) showInvalid(detail string) {
	_ = s.console.WriteLine(terminal.Colorf(terminal.Red, "  ✘ Invalid input: %s", detail))
}

func (s *Session) goodbye() {
	_ = s.console.Blank()
	_ = s.console.WriteLine(terminal.Colorf(terminal.Dim,
		"Thanks for using %s. Goodbye!", AppName))
}

// isCancel reports whether the input cancels the current flow.
func isCancel(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	return lower == "q" || lower == "cancel"
}
